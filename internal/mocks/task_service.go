package mocks

import (
	"context"

	"github.com/phrazzld/taskpad/internal/domain"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	ListRecentFn func(ctx context.Context) ([]domain.Task, error)
	CreateFn     func(ctx context.Context, title, description string) (*domain.Task, error)
	CompleteFn   func(ctx context.Context, id int64) (*domain.Task, error)

	// Default return values
	Tasks        []domain.Task
	Task         *domain.Task
	DefaultError error
}

// ListRecent implements the TaskService.ListRecent method
func (m *MockTaskService) ListRecent(ctx context.Context) ([]domain.Task, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// Create implements the TaskService.Create method
func (m *MockTaskService) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title, description)
	}
	return m.Task, m.DefaultError
}

// Complete implements the TaskService.Complete method
func (m *MockTaskService) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, id)
	}
	return m.Task, m.DefaultError
}
