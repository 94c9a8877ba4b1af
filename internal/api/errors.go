package api

import (
	"net/http"

	"github.com/phrazzld/taskpad/internal/domain"
)

// Messages for failures detected in the HTTP layer itself.
const (
	MsgInvalidRequestFormat = "Invalid request format"
	MsgInvalidTaskID        = "Invalid task ID"
)

// MapErrorToStatusCode maps a service error to an HTTP status code by its kind.
func MapErrorToStatusCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		// Missing and already-completed tasks share one response.
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-facing message for err. Infrastructure
// errors always get fallback, whatever they carry.
func GetSafeErrorMessage(err error, fallback string) string {
	if domain.KindOf(err) == domain.KindInfrastructure {
		return fallback
	}
	return domain.MessageOf(err, fallback)
}
