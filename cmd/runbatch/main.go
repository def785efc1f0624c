package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/batch"
	"github.com/wastetrack/slips-tracker/internal/common"
	"github.com/wastetrack/slips-tracker/internal/imaging"
	"github.com/wastetrack/slips-tracker/internal/parser"
	"github.com/wastetrack/slips-tracker/internal/pipeline"
	"github.com/wastetrack/slips-tracker/internal/recognition/openai"
	repo "github.com/wastetrack/slips-tracker/internal/repository"
)

// runbatch extracts every slip capture under a directory. With DB_URL set
// it also flags duplicates against the recorded slips.
func main() {
	var (
		dir        = flag.String("dir", "", "directory of slip captures")
		typeArg    = flag.String("type", "", "slip type (受領証, 検量書, 計量伝票, 計量票)")
		workers    = flag.Int("workers", 4, "concurrent extractions")
		timeout    = flag.Duration("timeout", 3*time.Minute, "per-file timeout")
		skipHidden = flag.Bool("skip-hidden", true, "skip dotfiles and dot-directories")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slipType, ok := constants.ParseSlipType(*typeArg)
	if !ok {
		logger.Error("unknown slip type", "arg", *typeArg)
		os.Exit(2)
	}
	if *dir == "" {
		logger.Error("-dir is required")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Recognition.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var dupes pipeline.DuplicateChecker
	if cfg.Database.DSN != "" {
		entc, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("opening db", "error", err)
			os.Exit(1)
		}
		defer repo.Close(entc, pool, logger)
		dupes = repo.NewSlipRepository(entc, logger)
	}

	extractor := pipeline.NewExtractor(
		logger,
		cfg.Imaging,
		imaging.NewConditioner(cfg.Imaging, logger),
		openai.NewClient(cfg.Recognition, logger),
		parser.New(logger),
		dupes,
	)

	runner := batch.NewRunner(extractor, logger,
		batch.WithWorkers(*workers),
		batch.WithProcessTimeout(*timeout),
	)

	results, stats, err := runner.Run(ctx, *dir, slipType, *skipHidden)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Stats   batch.Stats    `json:"stats"`
		Results []batch.Result `json:"results"`
	}{stats, results}); err != nil {
		logger.Error("encode results", "error", err)
		os.Exit(1)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}
