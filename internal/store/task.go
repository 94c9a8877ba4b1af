package store

import (
	"context"

	"github.com/phrazzld/taskpad/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// FindRecentIncomplete returns up to limit tasks that are not completed,
	// newest first. An empty result is an empty slice, not an error.
	FindRecentIncomplete(ctx context.Context, limit int) ([]domain.Task, error)

	// Create inserts a new, incomplete task and returns it as persisted,
	// including the store-assigned ID and CreatedAt.
	Create(ctx context.Context, title, description string) (*domain.Task, error)

	// MarkCompleted sets Completed on the task with the given ID, but only if it
	// is currently incomplete, and returns the updated task.
	// Returns ErrTaskNotFound when no row matched. A missing task and an
	// already-completed task are indistinguishable here.
	//
	// The check and the update are a single conditional statement, so of two
	// concurrent calls for the same task exactly one succeeds.
	MarkCompleted(ctx context.Context, id int64) (*domain.Task, error)

	// FindByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// DeleteAll removes every task. It exists for environment resets and tests only.
	DeleteAll(ctx context.Context) error
}
