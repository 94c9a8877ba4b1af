package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskpad/internal/api/middleware"
	"github.com/phrazzld/taskpad/internal/domain"
	"github.com/phrazzld/taskpad/internal/mocks"
	"github.com/phrazzld/taskpad/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end flow through the real router, service and the in-memory store.
func TestRouterEndToEnd(t *testing.T) {
	t.Parallel()

	svc, err := service.NewTaskService(mocks.NewMockTaskStore(), discardLogger())
	require.NoError(t, err)
	server := httptest.NewServer(NewRouter(svc, discardLogger()))
	defer server.Close()

	do := func(method, path, body string) (*http.Response, []byte) {
		t.Helper()
		req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := server.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, data
	}

	resp, body := do(http.MethodGet, "/api/tasks", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
	assert.NotEmpty(t, resp.Header.Get(middleware.TraceIDHeader))

	var ids []int64
	for i := 1; i <= 6; i++ {
		resp, body = do(http.MethodPost, "/api/tasks",
			fmt.Sprintf(`{"title":"  Task %d  ","description":"  Desc  "}`, i))
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		var task domain.Task
		require.NoError(t, json.Unmarshal(body, &task))
		assert.Equal(t, fmt.Sprintf("Task %d", i), task.Title)
		assert.Equal(t, "Desc", task.Description)
		assert.False(t, task.Completed)
		ids = append(ids, task.ID)
	}

	resp, body = do(http.MethodPost, "/api/tasks", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Title is required","trace_id":"`+resp.Header.Get(middleware.TraceIDHeader)+`"}`, string(body))

	resp, body = do(http.MethodPost, "/api/tasks", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `"error":"Title is required"`)

	resp, _ = do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d/complete", ids[5]), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d/complete", ids[5]), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "not found")

	resp, body = do(http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(body, &tasks))
	require.Len(t, tasks, service.RecentTaskLimit)
	for i, task := range tasks {
		assert.Equal(t, ids[4-i], task.ID, "newest first")
		assert.False(t, task.Completed)
	}

	resp, _ = do(http.MethodDelete, "/api/tasks", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
