// Package handler provides the types for answering HTTP requests with
// type-safe context handling. It defines the two handler forms a route
// can be bound to and the context contract both forms receive.
//
// # Handler forms
//
// The duplicable form is a plain HandlerFunc. Function values copy
// freely and carry no instance state, so one value safely answers every
// concurrent request:
//
//	func showWidget(ctx *route.Context) handler.Response {
//		w := state.MustFrom[WidgetID](ctx.State())
//		return func(rw http.ResponseWriter, r *http.Request) error {
//			_, err := fmt.Fprintf(rw, "widget %d", w.ID)
//			return err
//		}
//	}
//
// The per-request form is a Factory, for handlers that need fresh
// mutable state on every dispatch. Construction is fallible so scarce
// resources can be acquired per request:
//
//	factory := handler.FactoryFunc[*route.Context](func() (handler.HandlerFunc[*route.Context], error) {
//		buf, err := acquireBuffer()
//		if err != nil {
//			return nil, err
//		}
//		return func(ctx *route.Context) handler.Response {
//			// buf is exclusive to this dispatch
//			return render(buf)
//		}, nil
//	})
//
// Both forms finalize a route identically; they differ only in handler
// instantiation semantics.
//
// # Responses
//
// A handler returns a Response, a function that performs the actual
// write. Separating response construction from rendering keeps handlers
// testable and lets the dispatch layer route rendering errors to its
// error handler.
package handler
