// Package normalize turns parsed candidate values into canonical fields and
// scores each one. Normalization is pure and idempotent: feeding its own
// output back in changes nothing.
package normalize

import (
	"strings"
	"time"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/entity"
)

// Normalize canonicalizes the extracted fields and builds the confidence
// report. rawText is the transcription used for corrective re-scans; now
// supplies the substitute date when none was read.
func Normalize(fields entity.ExtractedFields, rawText string, slipType constants.SlipType, now time.Time) (entity.ExtractedFields, entity.ConfidenceReport) {
	out := entity.ExtractedFields{
		Date:           NormalizeDate(fields.Date),
		ClientName:     strings.TrimSpace(fields.ClientName),
		ItemName:       strings.TrimSpace(fields.ItemName),
		NetWeight:      CleanWeight(fields.NetWeight),
		ManifestNumber: strings.TrimSpace(fields.ManifestNumber),
	}

	if slipType == constants.SlipTypeReceipt {
		out.NetWeight = CorrectWeight(out.NetWeight, rawText)
		out.ClientName = CorrectReceiptClient(out.ClientName, rawText)
	}

	conf := entity.ConfidenceReport{}

	if out.Date == "" {
		out.Date = DefaultDate(now)
		conf["date"] = entity.FieldConfidence{Level: constants.ConfidenceDefault, Score: 50}
	} else {
		conf["date"] = entity.FieldConfidence{Level: constants.ConfidenceGood, Score: 80}
	}

	conf["clientName"] = presenceConfidence(out.ClientName)
	conf["itemName"] = presenceConfidence(out.ItemName)
	conf["manifestNumber"] = presenceConfidence(out.ManifestNumber)

	// Net weight is the field invoices hang off, so it scores all or nothing.
	if out.NetWeight != "" {
		conf["netWeight"] = entity.FieldConfidence{Level: constants.ConfidenceGood, Score: 100}
	} else {
		conf["netWeight"] = entity.FieldConfidence{Level: constants.ConfidenceMissing, Score: 0}
	}

	return out, conf
}

func presenceConfidence(value string) entity.FieldConfidence {
	if value == "" {
		return entity.FieldConfidence{Level: constants.ConfidenceMissing, Score: 0}
	}
	return entity.FieldConfidence{Level: constants.ConfidenceGood, Score: 80}
}
