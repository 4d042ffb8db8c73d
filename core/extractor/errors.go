package extractor

import "errors"

// Error variables for extractor implementations to wrap, so dispatch-layer
// error handlers can classify failures without knowing concrete extractors.
var (
	// ErrPathExtraction indicates path segments could not be converted
	// to the extractor's value type (missing segment, bad format).
	ErrPathExtraction = errors.New("failed to extract path parameters")

	// ErrQueryExtraction indicates the query string could not be
	// converted to the extractor's value type.
	ErrQueryExtraction = errors.New("failed to extract query parameters")
)
