package polyplot

import "errors"

var (
	// ErrTooFewPoints indicates a polygon with fewer than two vertices.
	ErrTooFewPoints = errors.New("polyplot: polygon must have at least two points")
	// ErrInvalidBounds indicates a degenerate or inverted user-space window.
	ErrInvalidBounds = errors.New("polyplot: bounds must satisfy min < max on both axes")
)
