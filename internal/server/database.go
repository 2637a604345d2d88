package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philly/inkwell/internal/platform/logger"
)

const (
	applicationName  = "inkwell"
	statementTimeout = "15s"
)

// ConnectDatabase opens the pool, pings it, and returns a cleanup that
// closes it. Settings already present in DATABASE_URL win over ours.
func ConnectDatabase(ctx context.Context, config Config, log logger.Logger) (*pgxpool.Pool, func(), error) {
	poolConfig, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		log.Error(ctx, "failed to parse database URL", "error", err)
		return nil, nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	runtime := poolConfig.ConnConfig.RuntimeParams
	if _, ok := runtime["application_name"]; !ok {
		runtime["application_name"] = applicationName
	}
	if _, ok := runtime["statement_timeout"]; !ok {
		runtime["statement_timeout"] = statementTimeout
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	log.Info(ctx, "connecting to database",
		"host", poolConfig.ConnConfig.Host,
		"database", poolConfig.ConnConfig.Database,
		"max_conns", poolConfig.MaxConns,
	)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error(ctx, "failed to create connection pool", "error", err)
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Error(ctx, "failed to ping database", "error", err)
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info(ctx, "database connection established")

	cleanup := func() {
		log.Info(context.Background(), "closing database connection pool")
		pool.Close()
	}
	return pool, cleanup, nil
}
