package fit

import "errors"

var (
	// ErrNoObservations indicates an empty observation vector.
	ErrNoObservations = errors.New("fit: observation vector must be non-empty")
	// ErrLengthMismatch indicates len(breaks) != len(alphas) in a likelihood evaluation.
	ErrLengthMismatch = errors.New("fit: partition and exponent vectors must have equal length")
)
