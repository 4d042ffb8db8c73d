package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/routekit/core/state"
)

// Context defines the contract for request contexts in the framework.
// State gives access to the per-request container holding values
// deposited by the route's extractors, keyed by type.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	State() *state.State
}
