// Package state provides the per-request, type-keyed value container
// used by the routing core. Values deposited by extractors are retrieved
// by handlers through the type they were stored under, so a handler and
// the extractors configured on its route agree on a shared set of types
// rather than on string keys.
//
// # Usage
//
//	import "github.com/dmitrymomot/routekit/core/state"
//
//	type WidgetID struct {
//		ID int
//	}
//
//	s := state.New()
//	state.Put(s, WidgetID{ID: 42})
//
//	w, err := state.From[WidgetID](s)   // WidgetID{ID: 42}, nil
//	w = state.MustFrom[WidgetID](s)     // panics if absent
//	ok := state.Has[WidgetID](s)        // true
//
// Reading a type that was never stored fails fast with
// ErrTypeNotPresent wrapped around the type's name, which turns a
// route-configuration mistake into an immediate, descriptive failure
// instead of a silent zero value.
//
// A State is scoped to exactly one request and is not safe for
// concurrent use.
package state
