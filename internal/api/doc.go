// Package api handles incoming HTTP requests, routing, request decoding,
// and response formatting. It acts as an adapter between HTTP clients
// and the task service, translating HTTP concerns to business operations.
//
// Handlers never inspect error text: the status code is chosen from
// domain.KindOf, and the response body carries the error's user-facing message
// or a fixed fallback.
package api
