package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/taskpad/internal/domain"
	"github.com/phrazzld/taskpad/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Without overrides it behaves as an in-memory store that is safe for concurrent use.
type MockTaskStore struct {
	// Function fields for customizable behavior
	FindRecentIncompleteFn func(ctx context.Context, limit int) ([]domain.Task, error)
	CreateFn               func(ctx context.Context, title, description string) (*domain.Task, error)
	MarkCompletedFn        func(ctx context.Context, id int64) (*domain.Task, error)
	FindByIDFn             func(ctx context.Context, id int64) (*domain.Task, error)
	DeleteAllFn            func(ctx context.Context) error

	// Now stamps CreatedAt on new tasks. Defaults to time.Now.
	Now func() time.Time

	mu     sync.Mutex
	tasks  map[int64]domain.Task
	nextID int64
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with an empty in-memory table.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Now:    time.Now,
		tasks:  make(map[int64]domain.Task),
		nextID: 1,
	}
}

// FindRecentIncomplete implements the TaskStore interface
func (m *MockTaskStore) FindRecentIncomplete(ctx context.Context, limit int) ([]domain.Task, error) {
	if m.FindRecentIncompleteFn != nil {
		return m.FindRecentIncompleteFn(ctx, limit)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if !task.Completed {
			result = append(result, task)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title, description)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now
	if m.Now != nil {
		now = m.Now
	}

	task := domain.Task{
		ID:          m.nextID,
		Title:       title,
		Description: description,
		CreatedAt:   now().UTC(),
	}
	m.tasks[task.ID] = task
	m.nextID++

	return &task, nil
}

// MarkCompleted implements the TaskStore interface
func (m *MockTaskStore) MarkCompleted(ctx context.Context, id int64) (*domain.Task, error) {
	if m.MarkCompletedFn != nil {
		return m.MarkCompletedFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.tasks[id]
	if !exists || task.Completed {
		return nil, store.ErrTaskNotFound
	}

	task.Completed = true
	m.tasks[id] = task
	return &task, nil
}

// FindByID implements the TaskStore interface
func (m *MockTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// DeleteAll implements the TaskStore interface
func (m *MockTaskStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = make(map[int64]domain.Task)
	return nil
}

// Len returns the number of stored tasks, completed or not.
func (m *MockTaskStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
