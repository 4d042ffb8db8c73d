package route

import "errors"

var (
	// Builder errors. Route construction happens at startup, so these
	// panic instead of returning: a misconfigured route must not reach
	// serving.
	ErrAlreadyBound         = errors.New("route already bound to a handler")
	ErrUninitializedBuilder = errors.New("builder was not obtained from a registrar")
	ErrNilHandler           = errors.New("nil handler")
	ErrNilFactory           = errors.New("nil handler factory")
	ErrNilExtractor         = errors.New("nil extractor")
	ErrNilRegistrar         = errors.New("nil registrar")
	ErrNilRoute             = errors.New("nil route")

	// Dispatch errors.
	ErrNilResponse = errors.New("nil response")
)
