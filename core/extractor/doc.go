// Package extractor defines the contracts for pulling strongly-typed
// values out of a request's path segments and query string before the
// handler runs.
//
// An extractor is a pure function from raw request data to a typed
// value. The routing core records the extractor attached to a route and
// guarantees that exactly that extractor runs at dispatch time, with its
// result deposited into per-request state under the value's type.
//
// # Writing an extractor
//
//	import "github.com/dmitrymomot/routekit/core/extractor"
//
//	type WidgetID struct {
//		ID int
//	}
//
//	func widgetFromPath(segments []string) (WidgetID, error) {
//		if len(segments) != 2 {
//			return WidgetID{}, fmt.Errorf("%w: want /widgets/{id}", extractor.ErrPathExtraction)
//		}
//		id, err := strconv.Atoi(segments[1])
//		if err != nil {
//			return WidgetID{}, fmt.Errorf("%w: %v", extractor.ErrPathExtraction, err)
//		}
//		return WidgetID{ID: id}, nil
//	}
//
// Segments arrive un-decoded (percent-encoding intact); decoding is the
// extractor's decision. Failures should wrap ErrPathExtraction or
// ErrQueryExtraction so the dispatch layer can classify them.
//
// Extractors must be safe for concurrent calls: one extractor value
// serves every in-flight request for its route.
//
// The no-op extractors returned by NoopPath and NoopQuery always succeed
// and produce None; they are the defaults on a fresh route builder.
package extractor
