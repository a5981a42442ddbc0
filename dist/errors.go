package dist

import "errors"

var (
	// ErrEmptyParams indicates an empty partition or exponent vector.
	ErrEmptyParams = errors.New("dist: partition and exponent vectors must be non-empty")
	// ErrLengthMismatch indicates len(breaks) != len(alphas).
	ErrLengthMismatch = errors.New("dist: partition and exponent vectors must have equal length")
	// ErrNonIncreasingBreaks indicates a partition vector that is not strictly increasing.
	ErrNonIncreasingBreaks = errors.New("dist: partition vector must be strictly increasing")
	// ErrBreakBelowOne indicates a partition floor below the discrete support minimum.
	ErrBreakBelowOne = errors.New("dist: partition floor must be at least 1")
	// ErrAlphaOutOfRange indicates an exponent at or below 1, where the zeta normalizer diverges.
	ErrAlphaOutOfRange = errors.New("dist: every exponent must exceed 1")
)
