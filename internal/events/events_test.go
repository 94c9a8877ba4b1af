package events

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler implements EventHandler for testing
type recordingHandler struct {
	mu     sync.Mutex
	events []*TaskEvent
	err    error
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func TestNewTaskEvent(t *testing.T) {
	task := &domain.Task{ID: 7, Title: "Buy milk"}

	event := NewTaskEvent(TypeTaskCreated, task)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeTaskCreated, event.Type)
	assert.Equal(t, int64(7), event.TaskID)
	assert.Equal(t, "Buy milk", event.Title)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)
}

func TestInMemoryEventEmitter(t *testing.T) {
	t.Run("no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		err := emitter.EmitEvent(context.Background(), NewTaskEvent(TypeTaskCreated, &domain.Task{ID: 1}))
		assert.NoError(t, err)
	})

	t.Run("dispatches to every handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		first := &recordingHandler{}
		second := &recordingHandler{}
		emitter.RegisterHandler(first)
		emitter.RegisterHandler(second)

		event := NewTaskEvent(TypeTaskCompleted, &domain.Task{ID: 2})
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		require.Len(t, first.events, 1)
		require.Len(t, second.events, 1)
		assert.Same(t, event, first.events[0])
	})

	t.Run("continues after a failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		failErr := errors.New("handler down")
		failing := &recordingHandler{err: failErr}
		healthy := &recordingHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(healthy)

		err := emitter.EmitEvent(context.Background(), NewTaskEvent(TypeTaskCreated, &domain.Task{ID: 3}))

		assert.ErrorIs(t, err, failErr)
		assert.Len(t, healthy.events, 1)
	})
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := NewLogHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := handler.HandleEvent(context.Background(), NewTaskEvent(TypeTaskCompleted, &domain.Task{ID: 42}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"event_type":"task.completed"`)
	assert.Contains(t, out, `"task_id":42`)
	assert.Contains(t, out, `"component":"task_events"`)
}
