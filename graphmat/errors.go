package graphmat

import "errors"

var (
	// ErrNegativeCapacity indicates Reserve was called with capacity < 0.
	ErrNegativeCapacity = errors.New("graphmat: capacity must be non-negative")
)
