package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/taskpad/internal/api/middleware"
	"github.com/phrazzld/taskpad/internal/service"
)

// NewRouter creates the application router with all routes and middleware.
func NewRouter(taskService service.TaskService, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))
	r.Use(apiMiddleware.NewRequestLogger(logger))
	r.Use(chimw.Recoverer)

	taskHandler := NewTaskHandler(taskService, logger)
	healthHandler := NewHealthHandler(nil)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Patch("/tasks/{id}/complete", taskHandler.CompleteTask)
	})

	r.Get("/health", healthHandler.Check)

	return r
}
