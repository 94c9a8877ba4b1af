package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/taskpad/internal/api"
	"github.com/phrazzld/taskpad/internal/domain"
	"github.com/phrazzld/taskpad/internal/mocks"
	"github.com/phrazzld/taskpad/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.NewTaskService(mocks.NewMockTaskStore(), logger)
	require.NoError(t, err)
	server := httptest.NewServer(api.NewRouter(svc, logger))
	t.Cleanup(server.Close)
	return server
}

func TestClientAgainstRouter(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	c := New(server.URL+"/", WithHTTPClient(server.Client()))
	ctx := context.Background()

	tasks, err := c.ListTasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	created, err := c.CreateTask(ctx, "  Buy milk ", " 2 liters ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, "2 liters", created.Description)

	_, err = c.CreateTask(ctx, "   ", "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Title is required", apiErr.Message)
	assert.NotEmpty(t, apiErr.TraceID)

	completed, err := c.CompleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	_, err = c.CompleteTask(ctx, created.ID)
	assert.True(t, IsNotFound(err))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Task not found or already completed", apiErr.Message)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)
	_, err = time.Parse(time.RFC3339, health.Timestamp)
	assert.NoError(t, err)
}

func TestClientErrorWithoutBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := New(server.URL).ListTasks(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.Equal(t, "api error 502: Bad Gateway", apiErr.Error())
	assert.False(t, IsNotFound(err))
}

func TestClientSendsJSON(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Task{ID: 9, Title: gotBody["title"]})
	}))
	defer server.Close()

	task, err := New(server.URL).CreateTask(context.Background(), "x", "y")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/tasks", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]string{"title": "x", "description": "y"}, gotBody)
	assert.Equal(t, int64(9), task.ID)
}

func TestClientTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := New(url).ListTasks(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
}
