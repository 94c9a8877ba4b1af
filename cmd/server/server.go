package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/phrazzld/taskpad/internal/api"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// newHTTPServer builds the HTTP server for the application's router.
func (app *application) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           api.NewRouter(app.taskService, app.logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests and closes the pool. Returns the process exit code.
func (app *application) serve(ctx context.Context) int {
	server := app.newHTTPServer()

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	wait := gfshutdown.GracefulShutdown(ctx, shutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			app.logger.Info("shutting down server")
			err := server.Shutdown(ctx)
			app.cleanup()
			return err
		},
	})

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			app.logger.Error("server failed", slog.Any("error", err))
			app.cleanup()
			return 1
		}
		return <-wait
	case exitCode := <-wait:
		app.logger.Info("server shutdown completed", slog.Int("exit_code", exitCode))
		return exitCode
	}
}
