package repository

import (
	"context"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/wastetrack/slips-tracker/gen/ent"
)

type Config struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// Open dials a pgx pool, wraps it as an Ent driver, and returns both so
// callers can close them in either order.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("db.open.bad_dsn", "error", err)
		return nil, nil, err
	}
	logger.Info("db.open.start",
		"host", pc.ConnConfig.Host,
		"database", pc.ConnConfig.Database,
	)

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "slips-tracker"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("db.open.failed", "error", err)
		return nil, nil, err
	}

	// Ent speaks database/sql, so expose the pool through stdlib.
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("db.open.ok")
	return client, pool, nil
}

// Close shuts down the ent client and the underlying pool.
func Close(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Error("db.close.ent_failed", "error", err)
		}
	}
	if pool != nil {
		pool.Close()
	}
	logger.Info("db.close.ok")
}

// HealthCheck pings the pool, bounding the wait when a timeout is given.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Error("db.ping.failed", "error", err)
		return err
	}
	logger.Debug("db.ping.ok")
	return nil
}
