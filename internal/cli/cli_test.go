package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskpad/internal/api"
	"github.com/phrazzld/taskpad/internal/client"
	"github.com/phrazzld/taskpad/internal/mocks"
	"github.com/phrazzld/taskpad/internal/service"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTestServer points API at a router backed by the in-memory store.
func useTestServer(t *testing.T) *mocks.MockTaskStore {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	taskStore := mocks.NewMockTaskStore()
	svc, err := service.NewTaskService(taskStore, logger)
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(svc, logger))
	t.Cleanup(server.Close)

	oldAPI := API
	API = client.New(server.URL, client.WithHTTPClient(server.Client()))
	t.Cleanup(func() { API = oldAPI })

	return taskStore
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	t.Cleanup(func() { cmd.SetOut(nil) })

	err := cmd.RunE(cmd, args)
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"ui", "list", "add", "complete", "health", "version"} {
		assert.True(t, names[want], "command %q should be registered", want)
	}
}

func TestListCmd_Empty(t *testing.T) {
	useTestServer(t)

	out, err := runCommand(t, listCmd)
	require.NoError(t, err)
	assert.Equal(t, "No tasks yet!\n", out)
}

func TestAddAndListCmd(t *testing.T) {
	taskStore := useTestServer(t)

	addDescription = "two litres"
	t.Cleanup(func() { addDescription = "" })

	out, err := runCommand(t, addCmd, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Created task 1: Buy milk\n", out)
	assert.Equal(t, 1, taskStore.Len())

	out, err = runCommand(t, listCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "two litres")
}

func TestAddCmd_BlankTitle(t *testing.T) {
	useTestServer(t)

	_, err := runCommand(t, addCmd, "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title is required")
}

func TestCompleteCmd(t *testing.T) {
	useTestServer(t)

	_, err := runCommand(t, addCmd, "Write report")
	require.NoError(t, err)

	out, err := runCommand(t, completeCmd, "1")
	require.NoError(t, err)
	assert.Equal(t, "Completed task 1: Write report\n", out)

	_, err = runCommand(t, completeCmd, "1")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestCompleteCmd_InvalidID(t *testing.T) {
	useTestServer(t)

	_, err := runCommand(t, completeCmd, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid task ID "abc"`)
}

func TestHealthCmd(t *testing.T) {
	useTestServer(t)

	out, err := runCommand(t, healthCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "OK (")
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "taskpad 1.2.3")
	assert.Contains(t, out.String(), "commit: abc123")
}
