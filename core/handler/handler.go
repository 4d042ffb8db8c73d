package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are handled by the dispatch layer's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe HTTP request handler with custom context support.
//
// A HandlerFunc bound directly to a route is the duplicable handler
// form: the same function value answers every dispatch, so it must not
// close over per-request mutable state. Handlers that need such state
// are produced fresh per request through a Factory instead.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors during request processing.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
