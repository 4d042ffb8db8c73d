package route

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/routekit/core/state"
)

// Context is the default handler.Context implementation. It delegates
// all context.Context methods to the request's context and owns the
// per-request state container.
type Context struct {
	w http.ResponseWriter
	r *http.Request
	s *state.State
}

// NewContext creates a context for one request with an empty state
// container.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		w: w,
		r: r,
		s: state.New(),
	}
}

// Deadline delegates to r.Context().
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to r.Context().
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to r.Context().
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value delegates to r.Context().
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// State returns the per-request state container.
func (c *Context) State() *state.State {
	return c.s
}
