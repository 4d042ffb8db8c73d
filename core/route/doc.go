// Package route implements the single-route configuration protocol: a
// builder that incrementally describes how one URL route is handled,
// which handler answers it, and which typed extractors pull values out
// of the request's path segments and query string before the handler
// runs.
//
// # Protocol
//
// A builder starts unbound with the no-op extractors attached. Zero or
// more extractor substitutions may be applied in any order, each
// replacing its own slot and leaving the rest of the configuration
// untouched. Exactly one handler binding (To or ToNewHandler) then
// finalizes the route, delivers it to the registrar, and spends the
// builder. The builder's type parameters track the extractor value
// types, so the types a handler reads from state are the types the
// route was configured with.
//
//	reg := route.NewRegistry[*route.Context]()
//
//	type WidgetID struct{ ID int }
//
//	widgetFromPath := func(segments []string) (WidgetID, error) {
//		id, err := strconv.Atoi(segments[len(segments)-1])
//		if err != nil {
//			return WidgetID{}, fmt.Errorf("%w: %v", extractor.ErrPathExtraction, err)
//		}
//		return WidgetID{ID: id}, nil
//	}
//
//	b := reg.NewRoute("/widgets/{id}", "web")
//	route.WithPathExtractor(b, widgetFromPath).To(showWidget)
//
// Binding the same route twice is a configuration bug and panics with
// ErrAlreadyBound, as does binding through a stale builder that shares
// the slot:
//
//	b := reg.NewRoute("/widgets/{id}", "web")
//	b2 := route.WithPathExtractor(b, widgetFromPath)
//	b2.To(showWidget)
//	b.To(showWidget) // panics: route already bound to a handler
//
// Route construction is a single-threaded, one-shot step performed
// before any request is served; nothing in this package synchronizes.
// Concurrency starts at dispatch time, which is why handlers bound via
// To must be stateless and factories passed to ToNewHandler must be
// safe for concurrent NewHandler calls.
//
// # Dispatch
//
// Route.Dispatch runs a single finalized route for one request: the
// recorded extractors deposit their values into the context's state
// container, a handler instance is obtained (shared function value for
// To, fresh instance for ToNewHandler), and the response is rendered.
// Matching an incoming URL to a route and running the pipeline are the
// surrounding router's job; the pipeline id and middleware chain are
// carried on the route opaquely.
package route
