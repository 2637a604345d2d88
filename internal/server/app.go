package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/postgres"
	"github.com/philly/inkwell/internal/platform/seeder"
)

const shutdownTimeout = 10 * time.Second

// Subscriptions marks that event subscribers and ownership checkers have
// been registered. App depends on it so the injector performs the wiring.
type Subscriptions struct{}

type App struct {
	server *http.Server
	config Config
	bus    *eventbus.Bus
	seeder *seeder.Orchestrator
	logger logger.Logger
}

func NewApp(
	server *http.Server,
	config Config,
	bus *eventbus.Bus,
	seeder *seeder.Orchestrator,
	logger logger.Logger,
	_ Subscriptions,
) *App {
	return &App{
		server: server,
		config: config,
		bus:    bus,
		seeder: seeder,
		logger: logger,
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then stops
// accepting requests and lets in-flight event handlers finish.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.config.SeedOnStart {
		if err := a.seeder.RunAll(ctx); err != nil {
			return fmt.Errorf("seed on start: %w", err)
		}
	}

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "starting server", "address", a.server.Addr, "environment", a.config.Environment)
		serverErrors <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		a.logger.Info(context.Background(), "shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to gracefully shutdown server: %w", err)
	}
	if err := a.bus.Drain(shutdownCtx); err != nil {
		a.logger.Warn(shutdownCtx, "event handlers still running at shutdown", "error", err)
	}

	a.logger.Info(shutdownCtx, "server stopped")
	return nil
}

// Tasks backs the one-shot CLI commands that need the database but not the
// HTTP stack.
type Tasks struct {
	db     postgres.Querier
	seeder *seeder.Orchestrator
	logger logger.Logger
}

func NewTasks(db postgres.Querier, seeder *seeder.Orchestrator, logger logger.Logger) *Tasks {
	return &Tasks{db: db, seeder: seeder, logger: logger}
}

func (t *Tasks) Migrate(ctx context.Context) error {
	t.logger.Info(ctx, "applying schema")
	if err := postgres.ApplySchema(ctx, t.db); err != nil {
		return err
	}
	t.logger.Info(ctx, "schema applied")
	return nil
}

func (t *Tasks) Seed(ctx context.Context) error {
	return t.seeder.RunAll(ctx)
}
