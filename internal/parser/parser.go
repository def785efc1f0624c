// Package parser turns a raw vision-service reply into candidate field
// values. Parsing never fails outright: three tiers run in order and the
// first non-empty value wins per field, so a mangled reply degrades to
// whatever the cruder tiers can still salvage.
package parser

import (
	"log/slog"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/entity"
)

// partial holds one tier's candidate values. Empty means not found.
type partial struct {
	date           string
	clientName     string
	itemName       string
	netWeight      string
	manifestNumber string
	rawText        string
}

func (p *partial) merge(next partial) {
	if p.date == "" {
		p.date = next.date
	}
	if p.clientName == "" {
		p.clientName = next.clientName
	}
	if p.itemName == "" {
		p.itemName = next.itemName
	}
	if p.netWeight == "" {
		p.netWeight = next.netWeight
	}
	if p.manifestNumber == "" {
		p.manifestNumber = next.manifestNumber
	}
	if p.rawText == "" {
		p.rawText = next.rawText
	}
}

func (p *partial) complete() bool {
	return p.date != "" && p.clientName != "" && p.itemName != "" &&
		p.netWeight != "" && p.manifestNumber != ""
}

type Parser struct {
	logger *slog.Logger
	schema map[string]any
}

func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		logger: logger,
		schema: BuildSlipJSONSchema(),
	}
}

// Parse runs the tier chain over a vision reply. The returned raw text is
// the transcription the corrector can re-scan later: the structured reply's
// rawText when present, the whole content otherwise.
func (p *Parser) Parse(content string, slipType constants.SlipType) (entity.ExtractedFields, string) {
	var acc partial

	if structured, ok := p.parseStructured(content); ok {
		acc.merge(structured)
		p.logger.Debug("parse.structured.ok", "slip_type", slipType.String())
	}
	if !acc.complete() {
		acc.merge(p.parseLines(content, slipType))
	}
	if !acc.complete() {
		acc.merge(p.parseKeywords(content))
	}

	rawText := acc.rawText
	if rawText == "" {
		rawText = content
	}

	return entity.ExtractedFields{
		Date:           acc.date,
		ClientName:     acc.clientName,
		ItemName:       acc.itemName,
		NetWeight:      acc.netWeight,
		ManifestNumber: acc.manifestNumber,
	}, rawText
}
