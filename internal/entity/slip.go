package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/wastetrack/slips-tracker/constants"
)

// ExtractedFields holds the five canonical slip fields after parsing and
// normalization. Empty string means the field could not be recovered.
type ExtractedFields struct {
	Date           string `json:"date"`
	ClientName     string `json:"clientName"`
	ItemName       string `json:"itemName"`
	NetWeight      string `json:"netWeight"`
	ManifestNumber string `json:"manifestNumber"`
}

// FieldConfidence scores a single extracted field.
type FieldConfidence struct {
	Level constants.ConfidenceLevel `json:"level"`
	Score int                       `json:"score"`
}

// ConfidenceReport maps each canonical field name to its confidence.
type ConfidenceReport map[string]FieldConfidence

// QualityReport summarizes a capture's photographic quality.
type QualityReport struct {
	Width            int      `json:"width"`
	Height           int      `json:"height"`
	Brightness       float64  `json:"brightness"`
	Contrast         float64  `json:"contrast"`
	Score            int      `json:"score"`
	Issues           []string `json:"issues,omitempty"`
	NeedConditioning bool     `json:"need_conditioning"`
}

// ExtractionResult bundles everything a single pipeline run produces.
type ExtractionResult struct {
	SlipType   constants.SlipType `json:"slip_type"`
	Fields     ExtractedFields    `json:"fields"`
	Confidence ConfidenceReport   `json:"confidence"`
	Quality    *QualityReport     `json:"quality,omitempty"`
	RawText    string             `json:"raw_text,omitempty"`
	Duplicate  bool               `json:"duplicate"`
}

// SlipRecord represents a persisted slip for data transfer between layers.
type SlipRecord struct {
	ID             uuid.UUID          `json:"id"`
	SlipType       constants.SlipType `json:"slip_type"`
	SlipDate       string             `json:"slip_date"`
	ClientName     string             `json:"client_name"`
	ItemName       string             `json:"item_name"`
	NetWeight      string             `json:"net_weight"`
	ManifestNumber string             `json:"manifest_number"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
