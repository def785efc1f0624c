package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/wastetrack/slips-tracker/constants"
	slipspb "github.com/wastetrack/slips-tracker/gen/slips/v1"
	"github.com/wastetrack/slips-tracker/internal/common"
	"github.com/wastetrack/slips-tracker/internal/entity"
	"github.com/wastetrack/slips-tracker/internal/export"
	"github.com/wastetrack/slips-tracker/internal/pipeline"
	"github.com/wastetrack/slips-tracker/internal/repository"
	"github.com/wastetrack/slips-tracker/internal/utils"
)

type SlipsService struct {
	slipspb.UnimplementedSlipsServiceServer
	extractor *pipeline.Extractor
	slips     repository.SlipRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewSlipsService(extractor *pipeline.Extractor, slips repository.SlipRepository, exporter *export.Service, logger *slog.Logger) *SlipsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlipsService{extractor: extractor, slips: slips, exporter: exporter, logger: logger}
}

func (s *SlipsService) ProcessSlip(ctx context.Context, req *slipspb.ProcessSlipRequest) (*slipspb.ProcessSlipResponse, error) {
	slipType, ok := constants.ParseSlipType(req.GetSlipType())
	if !ok {
		return nil, common.InvalidArgumentErrorf("unknown slip_type %q", req.GetSlipType())
	}
	if len(req.GetImage()) == 0 {
		return nil, common.InvalidArgumentError("image is required")
	}

	result, err := s.extractor.Extract(ctx, req.GetImage(), slipType)
	if err != nil {
		s.logger.Warn("server.process_slip.failed", "slip_type", slipType.String(), "error", err)
		return nil, common.GRPCStatus(err)
	}

	return &slipspb.ProcessSlipResponse{
		Fields:     utils.ToPBFields(result.Fields),
		Confidence: utils.ToPBConfidence(result.Confidence),
		Quality:    utils.ToPBQuality(result.Quality),
		RawText:    result.RawText,
		Duplicate:  result.Duplicate,
	}, nil
}

func (s *SlipsService) CheckQuality(ctx context.Context, req *slipspb.CheckQualityRequest) (*slipspb.CheckQualityResponse, error) {
	if len(req.GetImage()) == 0 {
		return nil, common.InvalidArgumentError("image is required")
	}

	report, err := s.extractor.CheckQuality(req.GetImage())
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &slipspb.CheckQualityResponse{Quality: utils.ToPBQuality(report)}, nil
}

func (s *SlipsService) SubmitSlip(ctx context.Context, req *slipspb.SubmitSlipRequest) (*slipspb.SubmitSlipResponse, error) {
	slipType, ok := constants.ParseSlipType(req.GetSlipType())
	if !ok {
		return nil, common.InvalidArgumentErrorf("unknown slip_type %q", req.GetSlipType())
	}
	f := req.GetFields()
	if f == nil {
		return nil, common.InvalidArgumentError("fields are required")
	}

	v := common.NewValidator()
	v.Field("date", f.GetDate(), common.Required, common.ISODate)
	v.Field("client_name", f.GetClientName(), common.Required)
	v.Field("net_weight", f.GetNetWeight(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	dup, err := s.slips.IsDuplicate(ctx, f.GetDate(), f.GetClientName(), f.GetNetWeight())
	if err != nil {
		s.logger.Error("server.submit_slip.dup_check_failed", "slip_date", f.GetDate(), "error", err)
		return nil, common.InternalError("duplicate check failed")
	}
	if dup {
		return nil, common.AlreadyExistsError("slip already recorded for this date, client, and weight")
	}

	rec, err := s.slips.InsertSlip(ctx, &repository.CreateSlipRequest{
		SlipType: slipType,
		Fields: entity.ExtractedFields{
			Date:           f.GetDate(),
			ClientName:     f.GetClientName(),
			ItemName:       f.GetItemName(),
			NetWeight:      f.GetNetWeight(),
			ManifestNumber: f.GetManifestNumber(),
		},
	})
	if err != nil {
		s.logger.Error("server.submit_slip.failed", "slip_date", f.GetDate(), "error", err)
		return nil, common.InternalError("submit slip failed")
	}

	return &slipspb.SubmitSlipResponse{Slip: utils.ToPBSlip(rec)}, nil
}

func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("%s must be YYYY-MM-DD", field)
	}
	return &t, nil
}

func (s *SlipsService) ListSlips(ctx context.Context, req *slipspb.ListSlipsRequest) (*slipspb.ListSlipsResponse, error) {
	from, err := parseDate("from_date", req.GetFromDate())
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to_date", req.GetToDate())
	if err != nil {
		return nil, err
	}

	recs, err := s.slips.ListSlips(ctx, from, to)
	if err != nil {
		s.logger.Error("server.list_slips.failed", "error", err)
		return nil, common.InternalError("list slips failed")
	}

	out := make([]*slipspb.Slip, 0, len(recs))
	for _, rec := range recs {
		out = append(out, utils.ToPBSlip(rec))
	}
	return &slipspb.ListSlipsResponse{Slips: out}, nil
}

func (s *SlipsService) ExportSlips(ctx context.Context, req *slipspb.ExportSlipsRequest) (*slipspb.ExportSlipsResponse, error) {
	from, err := parseDate("from_date", req.GetFromDate())
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to_date", req.GetToDate())
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportSlipsXLSX(ctx, from, to)
	if err != nil {
		s.logger.Error("server.export_slips.failed", "error", err)
		return nil, common.InternalError("export slips failed")
	}

	name := "slips-" + time.Now().Format("20060102-150405") + ".xlsx"
	return &slipspb.ExportSlipsResponse{Xlsx: data, Filename: name}, nil
}
