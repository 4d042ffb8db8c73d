package route

import (
	"fmt"

	"github.com/dmitrymomot/routekit/core/extractor"
	"github.com/dmitrymomot/routekit/core/handler"
)

// SingleRouteBuilder configures how one URL route is handled. The type
// parameters P and Q are the value types produced by the path and
// query-string extractors currently attached to the route; a fresh
// builder carries the no-op extractors, so P = Q = extractor.None.
//
// Builders are plain values. The substitution functions
// WithPathExtractor and WithQueryStringExtractor return new builder
// values with one extractor slot replaced, and every builder derived
// from the same route shares one binding slot. To and ToNewHandler
// finalize the route through that slot: afterwards the builder, and
// every builder derived from it, is spent, and any further binding
// attempt panics with ErrAlreadyBound.
type SingleRouteBuilder[C handler.Context, P, Q any] struct {
	slot  *bindingSlot[C]
	path  extractor.Path[P]
	query extractor.Query[Q]
}

// bindingSlot is the configuration shared by all builders derived from
// one route: the registrar to deliver the finished route to, the
// pattern and pipeline chosen before this protocol runs, and the
// finalized flag. Route construction is single-threaded, so the flag
// needs no synchronization.
type bindingSlot[C handler.Context] struct {
	registrar   Registrar[C]
	pattern     string
	pipeline    PipelineID
	middlewares []handler.Middleware[C]
	bound       bool
}

// NewBuilder starts configuration of a single route. The pattern and
// pipeline were chosen by the route-registration layer before the
// builder is handed out; middlewares are carried opaquely onto the
// finished route. The returned builder has the no-op extractors
// attached.
func NewBuilder[C handler.Context](reg Registrar[C], pattern string, pipeline PipelineID, middlewares ...handler.Middleware[C]) SingleRouteBuilder[C, extractor.None, extractor.None] {
	if reg == nil {
		panic(ErrNilRegistrar)
	}
	return SingleRouteBuilder[C, extractor.None, extractor.None]{
		slot: &bindingSlot[C]{
			registrar:   reg,
			pattern:     pattern,
			pipeline:    pipeline,
			middlewares: middlewares,
		},
		path:  extractor.NoopPath(),
		query: extractor.NoopQuery(),
	}
}

// To binds h as the route's handler and finalizes the route with the
// extractor types currently attached. The same function value answers
// every dispatch, so h must not close over per-request mutable state;
// this is the low-friction path for pure-function handlers. Use
// ToNewHandler when the handler needs fresh state per request.
func (b SingleRouteBuilder[C, P, Q]) To(h handler.HandlerFunc[C]) {
	if h == nil {
		panic(ErrNilHandler)
	}
	b.finalize(handler.FactoryFunc[C](func() (handler.HandlerFunc[C], error) {
		return h, nil
	}))
}

// ToNewHandler binds f as the route's handler factory and finalizes the
// route with the extractor types currently attached. Every dispatch
// obtains its own handler instance from f; construction failures are
// surfaced per request by the dispatch layer.
func (b SingleRouteBuilder[C, P, Q]) ToNewHandler(f handler.Factory[C]) {
	if f == nil {
		panic(ErrNilFactory)
	}
	b.finalize(f)
}

func (b SingleRouteBuilder[C, P, Q]) finalize(f handler.Factory[C]) {
	if b.slot == nil {
		panic(ErrUninitializedBuilder)
	}
	if b.slot.bound {
		panic(fmt.Errorf("%w: %s", ErrAlreadyBound, b.slot.pattern))
	}
	b.slot.bound = true
	b.slot.registrar.Add(newRoute(b.slot, f, b.path, b.query))
}

// WithPathExtractor returns a builder whose path extractor is ex,
// producing values of type NP. It replaces any previously attached path
// extractor; the query-string slot and the pending handler binding are
// untouched, so substitutions compose in any order.
func WithPathExtractor[C handler.Context, P, Q, NP any](b SingleRouteBuilder[C, P, Q], ex extractor.Path[NP]) SingleRouteBuilder[C, NP, Q] {
	if ex == nil {
		panic(fmt.Errorf("%w: path extractor", ErrNilExtractor))
	}
	return SingleRouteBuilder[C, NP, Q]{slot: b.slot, path: ex, query: b.query}
}

// WithQueryStringExtractor returns a builder whose query-string
// extractor is ex, producing values of type NQ. It replaces any
// previously attached query-string extractor and leaves the path slot
// and the pending handler binding untouched.
func WithQueryStringExtractor[C handler.Context, P, Q, NQ any](b SingleRouteBuilder[C, P, Q], ex extractor.Query[NQ]) SingleRouteBuilder[C, P, NQ] {
	if ex == nil {
		panic(fmt.Errorf("%w: query-string extractor", ErrNilExtractor))
	}
	return SingleRouteBuilder[C, P, NQ]{slot: b.slot, path: b.path, query: ex}
}
