package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/taskpad/internal/config"
	"github.com/phrazzld/taskpad/internal/events"
	"github.com/phrazzld/taskpad/internal/platform/postgres"
	"github.com/phrazzld/taskpad/internal/service"
	"github.com/phrazzld/taskpad/internal/store"
)

// application holds the shared dependencies so they can be wired once and
// released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool

	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication opens the database pool and wires store to service.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return assembleApplication(cfg, logger, pool, postgres.NewPostgresTaskStore(pool, logger))
}

// assembleApplication wires the service on top of an existing store, with
// task events written to the log.
// pool may be nil when the store is not database-backed.
func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	taskStore store.TaskStore,
) (*application, error) {
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogHandler(logger))

	taskService, err := service.NewTaskService(taskStore, logger, service.WithEventEmitter(emitter))
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		pool:        pool,
		taskStore:   taskStore,
		taskService: taskService,
	}, nil
}

// errResetInProduction is returned by resetData in the production environment.
var errResetInProduction = errors.New("refusing to reset task data in production")

// resetData deletes every task. It refuses to run in production.
func (app *application) resetData(ctx context.Context) error {
	if app.config.Server.IsProduction() {
		return errResetInProduction
	}
	app.logger.Warn("resetting task data",
		slog.String("environment", app.config.Server.Environment))
	return app.taskStore.DeleteAll(ctx)
}

// cleanup releases the database pool.
func (app *application) cleanup() {
	if app.pool != nil {
		app.logger.Info("closing database pool")
		app.pool.Close()
	}
}
