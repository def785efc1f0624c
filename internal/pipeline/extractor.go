// Package pipeline coordinates a slip capture end to end: quality check,
// conditioning, recognition, parsing, normalization, and duplicate lookup.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/common"
	"github.com/wastetrack/slips-tracker/internal/entity"
	"github.com/wastetrack/slips-tracker/internal/imaging"
	"github.com/wastetrack/slips-tracker/internal/normalize"
	"github.com/wastetrack/slips-tracker/internal/parser"
	"github.com/wastetrack/slips-tracker/internal/recognition"
)

// DuplicateChecker answers whether a slip with the same identity triple has
// already been recorded.
type DuplicateChecker interface {
	IsDuplicate(ctx context.Context, slipDate, clientName, netWeight string) (bool, error)
}

// Extractor runs the extraction pipeline. The duplicate checker is optional;
// without one the Duplicate flag stays false.
type Extractor struct {
	logger      *slog.Logger
	conditioner *imaging.Conditioner
	recognizer  recognition.Recognizer
	parser      *parser.Parser
	dupes       DuplicateChecker

	artifactDir    string
	maxUploadBytes int
	now            func() time.Time
}

func NewExtractor(
	logger *slog.Logger,
	cfg common.ImagingConfig,
	conditioner *imaging.Conditioner,
	recognizer recognition.Recognizer,
	p *parser.Parser,
	dupes DuplicateChecker,
) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	maxBytes := cfg.MaxUploadMB * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}
	return &Extractor{
		logger:         logger,
		conditioner:    conditioner,
		recognizer:     recognizer,
		parser:         p,
		dupes:          dupes,
		artifactDir:    cfg.ArtifactDir,
		maxUploadBytes: maxBytes,
		now:            time.Now,
	}
}

// Extract turns a photographed slip into canonical fields.
func (e *Extractor) Extract(ctx context.Context, image []byte, slipType constants.SlipType) (*entity.ExtractionResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	if err := e.validateInput(image, slipType); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(image)
	if err != nil {
		return nil, err
	}

	quality := imaging.AnalyzeQuality(img)
	e.logger.Info("pipeline.quality",
		"req_id", rid,
		"slip_type", slipType.String(),
		"score", quality.Score,
		"issues", quality.Issues,
	)

	payload := image
	if quality.NeedConditioning && e.conditioner != nil {
		payload = e.conditioner.Condition(image, slipType)
	}

	artifact, err := e.writeArtifact(payload)
	if err != nil {
		e.logger.Warn("pipeline.artifact_failed", "req_id", rid, "error", err)
	} else {
		defer func() {
			if rmErr := os.Remove(artifact); rmErr != nil && !os.IsNotExist(rmErr) {
				e.logger.Warn("pipeline.artifact_cleanup_failed", "req_id", rid, "error", rmErr)
			}
		}()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strat := recognition.StrategyFor(slipType)
	res, err := e.recognizer.Recognize(ctx, payload, strat)
	if err != nil {
		e.logger.Error("pipeline.recognize_failed",
			"req_id", rid,
			"slip_type", slipType.String(),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	fields, rawText := e.parser.Parse(res.Content, slipType)
	fields, confidence := normalize.Normalize(fields, rawText, slipType, e.now())

	result := &entity.ExtractionResult{
		SlipType:   slipType,
		Fields:     fields,
		Confidence: confidence,
		Quality:    quality,
		RawText:    rawText,
	}

	if e.dupes != nil && fields.NetWeight != "" {
		dup, dupErr := e.dupes.IsDuplicate(ctx, fields.Date, fields.ClientName, fields.NetWeight)
		if dupErr != nil {
			// Duplicate lookup failing should not void a good extraction.
			e.logger.Warn("pipeline.duplicate_check_failed", "req_id", rid, "error", dupErr)
		} else {
			result.Duplicate = dup
		}
	}

	e.logger.Info("pipeline.extract.ok",
		"req_id", rid,
		"slip_type", slipType.String(),
		"date", fields.Date,
		"client", fields.ClientName,
		"net_weight", fields.NetWeight,
		"duplicate", result.Duplicate,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// CheckQuality scores a capture without dispatching recognition.
func (e *Extractor) CheckQuality(image []byte) (*entity.QualityReport, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", common.ErrInvalidInput)
	}
	img, err := imaging.Decode(image)
	if err != nil {
		return nil, err
	}
	return imaging.AnalyzeQuality(img), nil
}

func (e *Extractor) validateInput(image []byte, slipType constants.SlipType) error {
	if !slipType.Valid() {
		return fmt.Errorf("%w: unknown slip type %q", common.ErrInvalidInput, string(slipType))
	}
	if len(image) == 0 {
		return fmt.Errorf("%w: empty image", common.ErrInvalidInput)
	}
	if len(image) > e.maxUploadBytes {
		return fmt.Errorf("%w: image exceeds %d bytes", common.ErrInvalidInput, e.maxUploadBytes)
	}
	return nil
}

// writeArtifact persists the payload sent to recognition so failed requests
// can be replayed while debugging. Artifacts live only for the request.
func (e *Extractor) writeArtifact(payload []byte) (string, error) {
	dir := e.artifactDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(dir, "slip-*.jpg")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Write(payload); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
