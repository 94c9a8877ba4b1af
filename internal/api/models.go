package api

// CreateTaskRequest defines the payload for POST /api/tasks.
// Title rules are enforced by the task service so that clients receive its
// exact validation messages.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HealthResponse defines the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
