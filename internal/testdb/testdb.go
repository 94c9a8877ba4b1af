//go:build integration

// Package testdb opens a migrated PostgreSQL pool for integration tests.
// Tests are skipped when DATABASE_URL is not set, except in CI where a
// missing database fails the test.
package testdb

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/taskpad/internal/config"
	"github.com/phrazzld/taskpad/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for tests, or "" when unset.
func GetTestDatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// ciEnvVars are set by the common CI providers.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// IsCI reports whether the tests run in a CI environment.
func IsCI() bool {
	for _, name := range ciEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// GetTestPool returns a pool against the test database with the schema
// migrated up and the task table emptied. The pool is closed on cleanup.
func GetTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		if IsCI() {
			t.Fatal("DATABASE_URL must be set in CI")
		}
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 4*TestTimeout)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		URL:            GetTestDatabaseURL(),
		MaxConns:       config.DefaultMaxConns,
		ConnectTimeout: TestTimeout,
		IdleTimeout:    config.DefaultIdleTimeout,
	}, logger)
	require.NoError(t, err, "failed to open test pool")
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.RunMigrations(ctx, pool, postgres.MigrateUp, logger),
		"failed to migrate test database")

	ResetTasks(t, pool)
	return pool
}

// ResetTasks empties the task table and restarts its id sequence.
func ResetTasks(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE task RESTART IDENTITY`)
	require.NoError(t, err, "failed to truncate task table")
}
