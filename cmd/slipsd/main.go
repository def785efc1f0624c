package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	slipspb "github.com/wastetrack/slips-tracker/gen/slips/v1"
	"github.com/wastetrack/slips-tracker/internal/common"
	"github.com/wastetrack/slips-tracker/internal/export"
	"github.com/wastetrack/slips-tracker/internal/imaging"
	"github.com/wastetrack/slips-tracker/internal/parser"
	"github.com/wastetrack/slips-tracker/internal/pipeline"
	"github.com/wastetrack/slips-tracker/internal/recognition/openai"
	repo "github.com/wastetrack/slips-tracker/internal/repository"
	"github.com/wastetrack/slips-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}

	slips := repo.NewSlipRepository(entc, logger)
	extractor := pipeline.NewExtractor(
		logger,
		cfg.Imaging,
		imaging.NewConditioner(cfg.Imaging, logger),
		openai.NewClient(cfg.Recognition, logger),
		parser.New(logger),
		slips,
	)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	exporter := export.NewService(slips, logger)
	svc := server.NewSlipsService(extractor, slips, exporter, logger)
	slipspb.RegisterSlipsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
