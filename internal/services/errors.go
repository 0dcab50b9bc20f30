package services

import "errors"

// Engine error taxonomy. All errors are returned values; the engine never
// panics on bad input, and unresolved locations are not errors (the
// distance calculator substitutes a documented fallback instead).
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
