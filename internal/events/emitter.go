package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/taskpad/internal/platform/logger"
)

// InMemoryEventEmitter stores registered handlers in memory and dispatches
// events to them synchronously.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With("component", "event_emitter"),
	}
}

// RegisterHandler adds a new event handler to receive events.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
}

// EmitEvent publishes the given event to all registered handlers.
// Every handler runs even when an earlier one fails; the first error is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *TaskEvent) error {
	e.mu.RLock()
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

const componentTaskEvents = "task_events"

// NewLogHandler returns a handler that writes each event to the request
// logger, falling back to base.
func NewLogHandler(base *slog.Logger) EventHandler {
	if base == nil {
		base = slog.Default()
	}
	base = base.With("component", componentTaskEvents)

	return HandlerFunc(func(ctx context.Context, event *TaskEvent) error {
		logger.ForComponent(ctx, base, componentTaskEvents).Info("task event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.Type),
			slog.Int64("task_id", event.TaskID))
		return nil
	})
}
