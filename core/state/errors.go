package state

import "errors"

// ErrTypeNotPresent indicates a typed read for a type that was never
// deposited into the request state, typically because the route was
// bound without the matching extractor.
var ErrTypeNotPresent = errors.New("type not present in request state")
