// Package events publishes task lifecycle events.
//
// The task service emits an event after each state change it persists.
// Handlers registered with an emitter receive every event in registration
// order; the server registers a handler that writes them to the structured log.
//
// The primary components are:
// - TaskEvent: a created or completed notification for one task
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
package events
