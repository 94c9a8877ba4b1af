package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskpad/internal/domain"
	"github.com/phrazzld/taskpad/internal/events"
	"github.com/phrazzld/taskpad/internal/platform/logger"
	"github.com/phrazzld/taskpad/internal/redact"
	"github.com/phrazzld/taskpad/internal/store"
)

const componentTaskService = "task_service"

// RecentTaskLimit is the number of incomplete tasks ListRecent returns.
const RecentTaskLimit = 5

// Messages carried by infrastructure errors. Handlers return these to clients.
const (
	MsgFetchFailed    = "Failed to fetch tasks"
	MsgCreateFailed   = "Failed to create task"
	MsgCompleteFailed = "Failed to complete task"
)

// TaskService provides task-related operations
type TaskService interface {
	// ListRecent returns up to RecentTaskLimit incomplete tasks, newest first.
	ListRecent(ctx context.Context) ([]domain.Task, error)

	// Create validates and trims the input and persists a new incomplete task.
	// Returns a validation-kind error for a blank or over-long title.
	Create(ctx context.Context, title, description string) (*domain.Task, error)

	// Complete marks the task completed.
	// Returns domain.ErrTaskNotFoundOrCompleted when the task is missing or
	// was already completed.
	Complete(ctx context.Context, id int64) (*domain.Task, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	emitter   events.EventEmitter
	logger    *slog.Logger
}

// Option configures a TaskService.
type Option func(*taskServiceImpl)

// WithEventEmitter publishes a TaskEvent after each successful create or complete.
func WithEventEmitter(emitter events.EventEmitter) Option {
	return func(s *taskServiceImpl) {
		s.emitter = emitter
	}
}

// NewTaskService creates a new TaskService.
// It returns an error if taskStore or logger is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger, opts ...Option) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	svc := &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", componentTaskService)),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// ListRecent implements TaskService.ListRecent
func (s *taskServiceImpl) ListRecent(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.FindRecentIncomplete(ctx, RecentTaskLimit)
	if err != nil {
		return nil, domain.NewInfrastructureError(MsgFetchFailed, err)
	}
	return tasks, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentTaskService)

	title, description, err := domain.NormalizeTaskInput(title, description)
	if err != nil {
		log.Debug("task input rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	task, err := s.taskStore.Create(ctx, title, description)
	if err != nil {
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return nil, domain.NewInfrastructureError(MsgCreateFailed, err)
	}

	s.emit(ctx, events.TypeTaskCreated, task)
	return task, nil
}

// Complete implements TaskService.Complete
func (s *taskServiceImpl) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentTaskService)

	task, err := s.taskStore.MarkCompleted(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("completion rejected", slog.Int64("task_id", id))
			return nil, domain.ErrTaskNotFoundOrCompleted
		}
		log.Error("failed to complete task",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return nil, domain.NewInfrastructureError(MsgCompleteFailed, err)
	}

	s.emit(ctx, events.TypeTaskCompleted, task)
	return task, nil
}

// emit publishes an event for a change that is already persisted, so
// handler failures are logged and never returned to the caller.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, task *domain.Task) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.EmitEvent(ctx, events.NewTaskEvent(eventType, task)); err != nil {
		logger.ForComponent(ctx, s.logger, componentTaskService).Warn("task event not delivered",
			slog.String("event_type", eventType),
			slog.Int64("task_id", task.ID),
			slog.String("error", redact.Error(err)))
	}
}
