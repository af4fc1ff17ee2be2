package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/qa-service/internal/domain/qa"
	"github.com/yanqian/qa-service/internal/infra/config"
	"github.com/yanqian/qa-service/internal/infra/qarepo"
)

const pingTimeout = 5 * time.Second

func provideQAConfig(cfg *config.Config) qa.Config {
	return qa.Config{
		QueryTimeout: cfg.Storage.QueryTimeout,
	}
}

// provideRepository opens the Postgres store when a DSN is configured and the
// in-memory store otherwise. A configured but unreachable database is fatal.
func provideRepository(cfg *config.Config, logger *slog.Logger) (qa.Repository, func(), error) {
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repository")
		return qarepo.NewMemoryRepository(), func() {}, nil
	}

	pool, err := openPool(cfg.Storage.Postgres, dsn)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("postgres repository enabled", "max_conns", cfg.Storage.Postgres.MaxConns)
	cleanup := func() {
		logger.Info("closing postgres pool")
		pool.Close()
	}
	return qarepo.NewPostgresRepository(pool), cleanup, nil
}

func openPool(cfg config.PostgresConfig, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	poolConfig.MaxConns = cfg.MaxConns
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
