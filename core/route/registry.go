package route

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/routekit/core/extractor"
	"github.com/dmitrymomot/routekit/core/handler"
)

// Registrar receives finalized routes from builders. The surrounding
// router implements it to collect routes into whatever matching
// structure it uses.
type Registrar[C handler.Context] interface {
	Add(*Route[C])
}

// Registry is a slice-backed Registrar. It records routes in
// registration order and exposes them for introspection; route
// construction is a one-shot configuration step, so Registry is not
// safe for concurrent use.
type Registry[C handler.Context] struct {
	routes []*Route[C]
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry[C handler.Context](opts ...Option[C]) *Registry[C] {
	reg := &Registry[C]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// NewRoute starts configuration of a route under the given pattern,
// returning a builder with the no-op extractors attached.
func (reg *Registry[C]) NewRoute(pattern string, pipeline PipelineID, middlewares ...handler.Middleware[C]) SingleRouteBuilder[C, extractor.None, extractor.None] {
	return NewBuilder(reg, pattern, pipeline, middlewares...)
}

// Add records a finalized route.
func (reg *Registry[C]) Add(rt *Route[C]) {
	if rt == nil {
		panic(ErrNilRoute)
	}
	reg.routes = append(reg.routes, rt)
	reg.logger.Info("route registered",
		"route_id", rt.ID().String(),
		"pattern", rt.Pattern(),
		"pipeline", string(rt.Pipeline()),
		"path_type", rt.PathType().String(),
		"query_type", rt.QueryType().String(),
	)
}

// Routes returns the registered routes in registration order.
func (reg *Registry[C]) Routes() []*Route[C] {
	out := make([]*Route[C], len(reg.routes))
	copy(out, reg.routes)
	return out
}
