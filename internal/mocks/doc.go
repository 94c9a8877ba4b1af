// Package mocks provides centralized mock implementations for testing.
//
// Each mock carries function fields that override a single method, and falls
// back to a default behavior when the field is nil:
//
//	taskStore := mocks.NewMockTaskStore()
//	taskStore.CreateFn = func(ctx context.Context, title, description string) (*domain.Task, error) {
//	    return nil, errors.New("connection refused")
//	}
//
// MockTaskStore's default behavior is a working in-memory store, so it can
// also back end-to-end tests of the HTTP layer without a database.
package mocks
