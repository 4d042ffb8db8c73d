package extractor

// Path extracts a typed value from the raw, un-decoded path segments of
// an incoming request. The produced value is deposited into per-request
// state keyed by T, where the route's handler reads it back.
//
// Implementations must be pure: safe for concurrent calls, no retained
// references to the segments slice, and no state besides the arguments.
type Path[T any] func(segments []string) (T, error)

// Query extracts a typed value from the raw query string of an incoming
// request. The produced value is deposited into per-request state keyed
// by T.
//
// The same purity requirements as for Path apply.
type Query[T any] func(rawQuery string) (T, error)
