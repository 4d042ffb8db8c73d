package route

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/routekit/core/extractor"
	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/state"
)

// PipelineID identifies the pre/post-processing chain associated with a
// route. Pipelines are composed and executed by the surrounding router;
// the id is carried opaquely here.
type PipelineID string

// Route is the finalized association of a URL pattern with its
// extractor types and handler. Routes are created only by consuming a
// builder, are immutable afterwards, and are owned by the registrar
// they were delivered to.
type Route[C handler.Context] struct {
	id          uuid.UUID
	pattern     string
	pipeline    PipelineID
	middlewares []handler.Middleware[C]
	factory     handler.Factory[C]
	extract     func(s *state.State, r *http.Request) error
	pathType    reflect.Type
	queryType   reflect.Type
}

// newRoute captures the builder's typed extractor pair into a
// type-erased extraction step, so the route can live alongside routes
// with different extractor types while still invoking exactly the
// extractors that were attached at binding time.
func newRoute[C handler.Context, P, Q any](slot *bindingSlot[C], f handler.Factory[C], pe extractor.Path[P], qe extractor.Query[Q]) *Route[C] {
	return &Route[C]{
		id:          uuid.New(),
		pattern:     slot.pattern,
		pipeline:    slot.pipeline,
		middlewares: slot.middlewares,
		factory:     f,
		pathType:    reflect.TypeFor[P](),
		queryType:   reflect.TypeFor[Q](),
		extract: func(s *state.State, r *http.Request) error {
			pv, err := pe(pathSegments(r))
			if err != nil {
				return fmt.Errorf("extract path %q: %w", r.URL.Path, err)
			}
			state.Put(s, pv)

			qv, err := qe(r.URL.RawQuery)
			if err != nil {
				return fmt.Errorf("extract query %q: %w", r.URL.RawQuery, err)
			}
			state.Put(s, qv)
			return nil
		},
	}
}

// Dispatch runs the route for one request: the recorded extractors
// deposit their values into ctx.State(), a handler instance is obtained
// from the route's factory, and the handler's response is rendered.
// Extraction and handler-construction errors are returned wrapped, with
// the original error kind preserved for errors.Is.
//
// Dispatch performs no route matching; selecting the route for an
// incoming URL is the surrounding router's job. Note that state is
// keyed by type identity, so if the path and query extractors produce
// the same type, the query value replaces the path value.
func (rt *Route[C]) Dispatch(ctx C) error {
	if err := rt.extract(ctx.State(), ctx.Request()); err != nil {
		return err
	}

	h, err := rt.factory.NewHandler()
	if err != nil {
		return fmt.Errorf("new handler for %s: %w", rt.pattern, err)
	}

	resp := h(ctx)
	if resp == nil {
		return ErrNilResponse
	}
	return resp(ctx.ResponseWriter(), ctx.Request())
}

// ID returns the route's unique identifier.
func (rt *Route[C]) ID() uuid.UUID {
	return rt.id
}

// Pattern returns the URL pattern the route was registered under.
func (rt *Route[C]) Pattern() string {
	return rt.pattern
}

// Pipeline returns the pipeline identifier associated with the route.
func (rt *Route[C]) Pipeline() PipelineID {
	return rt.pipeline
}

// Middlewares returns the middleware chain carried on the route.
func (rt *Route[C]) Middlewares() []handler.Middleware[C] {
	out := make([]handler.Middleware[C], len(rt.middlewares))
	copy(out, rt.middlewares)
	return out
}

// PathType returns the type produced by the route's path extractor.
func (rt *Route[C]) PathType() reflect.Type {
	return rt.pathType
}

// QueryType returns the type produced by the route's query-string extractor.
func (rt *Route[C]) QueryType() reflect.Type {
	return rt.queryType
}

// pathSegments splits the request path into raw, un-decoded segments.
// RawPath is preferred so percent-encoding survives intact; decoding is
// the extractor's decision.
func pathSegments(r *http.Request) []string {
	p := r.URL.Path
	if r.URL.RawPath != "" {
		p = r.URL.RawPath
	}
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
