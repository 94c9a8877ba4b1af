// Package domain defines the core business entity of taskpad, the Task,
// together with the input rules every new task must satisfy and the typed
// error used to report failures across the service and API layers.
//
// Domain types are free of persistence and transport concerns. Stores map
// rows into Task values and handlers serialize them as JSON; neither
// decides what a valid task is.
package domain
