package utils

import (
	"time"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/gen/ent"
	slipspb "github.com/wastetrack/slips-tracker/gen/slips/v1"
	"github.com/wastetrack/slips-tracker/internal/entity"
)

func ToSlipRecord(s *ent.Slip) *entity.SlipRecord {
	return &entity.SlipRecord{
		ID:             s.ID,
		SlipType:       constants.SlipType(s.SlipType),
		SlipDate:       s.SlipDate.Format("2006-01-02"),
		ClientName:     s.ClientName,
		ItemName:       s.ItemName,
		NetWeight:      s.NetWeight,
		ManifestNumber: s.ManifestNumber,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func ToPBSlip(s *entity.SlipRecord) *slipspb.Slip {
	return &slipspb.Slip{
		Id:             s.ID.String(),
		SlipType:       s.SlipType.String(),
		SlipDate:       s.SlipDate,
		ClientName:     s.ClientName,
		ItemName:       s.ItemName,
		NetWeight:      s.NetWeight,
		ManifestNumber: s.ManifestNumber,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBFields(f entity.ExtractedFields) *slipspb.SlipFields {
	return &slipspb.SlipFields{
		Date:           f.Date,
		ClientName:     f.ClientName,
		ItemName:       f.ItemName,
		NetWeight:      f.NetWeight,
		ManifestNumber: f.ManifestNumber,
	}
}

func ToPBConfidence(c entity.ConfidenceReport) map[string]*slipspb.FieldConfidence {
	out := make(map[string]*slipspb.FieldConfidence, len(c))
	for field, fc := range c {
		out[field] = &slipspb.FieldConfidence{
			Level: string(fc.Level),
			Score: int32(fc.Score),
		}
	}
	return out
}

func ToPBQuality(q *entity.QualityReport) *slipspb.QualityReport {
	if q == nil {
		return nil
	}
	return &slipspb.QualityReport{
		Width:            int32(q.Width),
		Height:           int32(q.Height),
		Brightness:       q.Brightness,
		Contrast:         q.Contrast,
		Score:            int32(q.Score),
		Issues:           q.Issues,
		NeedConditioning: q.NeedConditioning,
	}
}
