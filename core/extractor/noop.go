package extractor

// None is the value produced by the no-op extractors. It carries no data
// and exists so routes without declared parameters need not specify an
// extractor explicitly.
type None struct{}

// NoopPath returns the default path extractor. It ignores the segments
// and never fails.
func NoopPath() Path[None] {
	return func([]string) (None, error) {
		return None{}, nil
	}
}

// NoopQuery returns the default query-string extractor. It ignores the
// query string and never fails.
func NoopQuery() Query[None] {
	return func(string) (None, error) {
		return None{}, nil
	}
}
