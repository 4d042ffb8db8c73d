package handler

// Factory produces a fresh handler instance for a single dispatch. It is
// the binding form for handlers that carry request-scoped mutable state:
// every dispatch gets its own instance, so concurrent requests never
// share handler-local data.
//
// The factory itself is shared across requests and NewHandler must be
// safe to call concurrently. When handler construction needs a scarce
// resource, NewHandler reports the acquisition failure instead of
// degrading to a default handler; the dispatch layer surfaces the error
// per request.
type Factory[C Context] interface {
	NewHandler() (HandlerFunc[C], error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc[C Context] func() (HandlerFunc[C], error)

// NewHandler calls f.
func (f FactoryFunc[C]) NewHandler() (HandlerFunc[C], error) {
	return f()
}
