package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/taskpad/internal/domain"
	"github.com/phrazzld/taskpad/internal/platform/logger"
	"github.com/phrazzld/taskpad/internal/redact"
	"github.com/phrazzld/taskpad/internal/store"
)

const componentTaskStore = "task_store"

const taskColumns = `id, title, COALESCE(description, ''), completed, created_at`

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a connection pool that is initialized and closed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresTaskStore {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		pool:   pool,
		logger: logger.With(slog.String("component", componentTaskStore)),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// withConn acquires a connection for the duration of fn and always releases it.
func (s *PostgresTaskStore) withConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(conn)
}

// FindRecentIncomplete implements store.TaskStore.FindRecentIncomplete
func (s *PostgresTaskStore) FindRecentIncomplete(ctx context.Context, limit int) ([]domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentTaskStore)

	query := `
		SELECT ` + taskColumns + `
		FROM task
		WHERE completed = FALSE
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	var tasks []domain.Task
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, limit)
		if err != nil {
			return err
		}
		tasks, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
			return scanTask(row)
		})
		return err
	})
	if err != nil {
		log.Error("failed to query recent incomplete tasks",
			slog.String("error", redact.Error(err)),
			slog.Int("limit", limit))
		return nil, store.NewStoreError("task", "find_recent_incomplete", "query failed", MapError(err))
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}

	log.Debug("recent incomplete tasks retrieved", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentTaskStore)

	query := `
		INSERT INTO task (title, description)
		VALUES ($1, $2)
		RETURNING ` + taskColumns

	var task domain.Task
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		var scanErr error
		task, scanErr = scanTask(conn.QueryRow(ctx, query, title, description))
		return scanErr
	})
	if err != nil {
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("task", "create", "insert failed", MapError(err))
	}

	log.Info("task created", slog.Int64("task_id", task.ID))
	return &task, nil
}

// MarkCompleted implements store.TaskStore.MarkCompleted
// The WHERE clause only matches incomplete rows, so the transition happens at
// most once even under concurrent requests.
func (s *PostgresTaskStore) MarkCompleted(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentTaskStore)

	query := `
		UPDATE task
		SET completed = TRUE
		WHERE id = $1 AND completed = FALSE
		RETURNING ` + taskColumns

	var task domain.Task
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		var scanErr error
		task, scanErr = scanTask(conn.QueryRow(ctx, query, id))
		return scanErr
	})
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("no incomplete task matched", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to mark task completed",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return nil, store.NewStoreError("task", "mark_completed", "update failed", MapError(err))
	}

	log.Info("task completed", slog.Int64("task_id", id))
	return &task, nil
}

// FindByID implements store.TaskStore.FindByID
func (s *PostgresTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentTaskStore)

	query := `
		SELECT ` + taskColumns + `
		FROM task
		WHERE id = $1
	`

	var task domain.Task
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		var scanErr error
		task, scanErr = scanTask(conn.QueryRow(ctx, query, id))
		return scanErr
	})
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return nil, store.NewStoreError("task", "find_by_id", "query failed", MapError(err))
	}

	return &task, nil
}

// DeleteAll implements store.TaskStore.DeleteAll
func (s *PostgresTaskStore) DeleteAll(ctx context.Context) error {
	log := logger.ForComponent(ctx, s.logger, componentTaskStore)

	var deleted int64
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		tag, execErr := conn.Exec(ctx, `DELETE FROM task`)
		deleted = tag.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Error("failed to delete tasks", slog.String("error", redact.Error(err)))
		return store.NewStoreError("task", "delete_all", "delete failed", MapError(err))
	}

	log.Warn("all tasks deleted", slog.Int64("count", deleted))
	return nil
}

// scanTask reads one task row in taskColumns order.
func scanTask(row pgx.Row) (domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
	)
	return task, err
}
