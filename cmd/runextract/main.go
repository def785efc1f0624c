package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/common"
	"github.com/wastetrack/slips-tracker/internal/imaging"
	"github.com/wastetrack/slips-tracker/internal/parser"
	"github.com/wastetrack/slips-tracker/internal/pipeline"
	"github.com/wastetrack/slips-tracker/internal/recognition/openai"
)

// runextract runs the extraction pipeline on a single image from disk,
// without touching the database. Handy for tuning prompts on new captures.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "runextract <slip-type> <image-path>")
		os.Exit(2)
	}
	slipType, ok := constants.ParseSlipType(os.Args[1])
	if !ok {
		logger.Error("unknown slip type", "arg", os.Args[1])
		os.Exit(2)
	}
	image, err := os.ReadFile(os.Args[2])
	if err != nil {
		logger.Error("read image", "path", os.Args[2], "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if cfg.Recognition.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	extractor := pipeline.NewExtractor(
		logger,
		cfg.Imaging,
		imaging.NewConditioner(cfg.Imaging, logger),
		openai.NewClient(cfg.Recognition, logger),
		parser.New(logger),
		nil,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	result, err := extractor.Extract(ctx, image, slipType)
	if err != nil {
		logger.Error("extraction failed",
			"slip_type", slipType.String(), "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"slip_type", slipType.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
