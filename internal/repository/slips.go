package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/gen/ent"
	"github.com/wastetrack/slips-tracker/gen/ent/slip"
	"github.com/wastetrack/slips-tracker/internal/entity"
	"github.com/wastetrack/slips-tracker/internal/utils"
)

// CreateSlipRequest wraps parameters for recording a slip.
type CreateSlipRequest struct {
	SlipType constants.SlipType
	Fields   entity.ExtractedFields
}

type SlipRepository interface {
	// FindSlip looks up a slip by its identity triple.
	FindSlip(ctx context.Context, slipDate, clientName, netWeight string) (*entity.SlipRecord, error)
	// IsDuplicate reports whether the identity triple is already recorded.
	IsDuplicate(ctx context.Context, slipDate, clientName, netWeight string) (bool, error)
	InsertSlip(ctx context.Context, request *CreateSlipRequest) (*entity.SlipRecord, error)
	ListSlips(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.SlipRecord, error)
}

type slipRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSlipRepository(client *ent.Client, logger *slog.Logger) SlipRepository {
	return &slipRepository{
		client: client,
		logger: logger,
	}
}

func (r *slipRepository) FindSlip(ctx context.Context, slipDate, clientName, netWeight string) (*entity.SlipRecord, error) {
	date, err := time.Parse("2006-01-02", slipDate)
	if err != nil {
		return nil, err
	}

	rec, err := r.client.Slip.Query().
		Where(
			slip.SlipDate(date),
			slip.ClientName(clientName),
			slip.NetWeight(netWeight),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to find slip", "slip_date", slipDate, "error", err)
		return nil, err
	}
	return utils.ToSlipRecord(rec), nil
}

func (r *slipRepository) IsDuplicate(ctx context.Context, slipDate, clientName, netWeight string) (bool, error) {
	rec, err := r.FindSlip(ctx, slipDate, clientName, netWeight)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

func (r *slipRepository) InsertSlip(ctx context.Context, request *CreateSlipRequest) (*entity.SlipRecord, error) {
	f := request.Fields

	slipDate, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		return nil, err
	}

	builder := r.client.Slip.Create().
		SetSlipType(request.SlipType.String()).
		SetSlipDate(slipDate).
		SetClientName(f.ClientName).
		SetNetWeight(f.NetWeight)

	if f.ItemName != "" {
		builder = builder.SetItemName(f.ItemName)
	}
	if f.ManifestNumber != "" {
		builder = builder.SetManifestNumber(f.ManifestNumber)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert slip", "slip_date", f.Date, "error", err)
		return nil, err
	}
	return utils.ToSlipRecord(rec), nil
}

func (r *slipRepository) ListSlips(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.SlipRecord, error) {
	q := r.client.Slip.Query()
	if fromDate != nil {
		q = q.Where(slip.SlipDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(slip.SlipDateLTE(*toDate))
	}
	recs, err := q.Order(slip.BySlipDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list slips", "error", err)
		return nil, err
	}

	result := make([]*entity.SlipRecord, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToSlipRecord(rec)
	}
	return result, nil
}
