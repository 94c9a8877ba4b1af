// Package main implements the entry point for the taskpad API server,
// which stores tasks in PostgreSQL and serves them over a JSON API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/taskpad/internal/config"
	"github.com/phrazzld/taskpad/internal/platform/logger"
	"github.com/phrazzld/taskpad/internal/platform/postgres"
)

// options holds the command-line flags.
type options struct {
	migrate   string
	resetData bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command and exit (up, down, status, version, reset)")
	fs.BoolVar(&opts.resetData, "reset-data", false, "delete every task and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.migrate != "" && !postgres.IsValidMigrationCommand(opts.migrate) {
		return opts, fmt.Errorf("invalid -migrate value %q", opts.migrate)
	}
	if opts.migrate != "" && opts.resetData {
		return opts, errors.New("-migrate and -reset-data cannot be combined")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(run(opts))
}

// run executes the selected mode and returns the process exit code.
func run(opts options) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		return 1
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("environment", cfg.Server.Environment),
		slog.String("log_level", cfg.Server.LogLevel))

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize application", slog.Any("error", err))
		return 1
	}

	switch {
	case opts.migrate != "":
		defer app.cleanup()
		if err := postgres.RunMigrations(ctx, app.pool, opts.migrate, log); err != nil {
			log.Error("migration failed", slog.Any("error", err))
			return 1
		}
		return 0

	case opts.resetData:
		defer app.cleanup()
		if err := app.resetData(ctx); err != nil {
			log.Error("data reset failed", slog.Any("error", err))
			return 1
		}
		return 0
	}

	if err := postgres.RunMigrations(ctx, app.pool, postgres.MigrateUp, log); err != nil {
		log.Error("failed to apply migrations", slog.Any("error", err))
		app.cleanup()
		return 1
	}

	return app.serve(ctx)
}
