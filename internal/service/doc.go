// Package service contains the task rules: the application layer between the
// HTTP handlers in internal/api and the persistence interface in internal/store.
//
// Services receive their dependencies through constructor injection and depend
// only on store interfaces, never on a specific implementation. They translate
// store errors into *domain.Error values so the API layer can choose a status
// code from domain.KindOf alone.
package service
