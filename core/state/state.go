package state

import (
	"fmt"
	"reflect"
)

// State is a heterogeneous container for per-request data, keyed by the
// static type of the stored value. Extracted path and query values are
// deposited here during dispatch and read back by handlers using the
// same type.
//
// A State belongs to a single request and is not safe for concurrent use.
type State struct {
	values map[reflect.Type]any
}

// New creates an empty State.
func New() *State {
	return &State{values: make(map[reflect.Type]any)}
}

// Put stores v keyed by its type T, replacing any previously stored
// value of the same type.
func Put[T any](s *State, v T) {
	s.values[typeOf[T]()] = v
}

// From returns the value stored for type T. It fails fast when nothing
// of that type was deposited, returning an error that names the missing
// type so misconfigured routes surface immediately.
func From[T any](s *State) (T, error) {
	v, ok := s.values[typeOf[T]()]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrTypeNotPresent, typeOf[T]())
	}
	return v.(T), nil
}

// MustFrom is like From but panics when type T is absent. Intended for
// handler bodies where a missing type means the route was configured
// without the matching extractor.
func MustFrom[T any](s *State) T {
	v, err := From[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether a value of type T has been deposited.
func Has[T any](s *State) bool {
	_, ok := s.values[typeOf[T]()]
	return ok
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
