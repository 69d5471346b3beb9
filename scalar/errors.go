package scalar

import "errors"

// Sentinel errors for scalar operations. Callers branch with errors.Is.
var (
	// ErrZeroVector indicates an attempt to normalise or use as an axis a
	// point whose modulus is zero.
	ErrZeroVector = errors.New("scalar: zero-length vector")

	// ErrEmptyInterval indicates an operation that requires a non-empty
	// interval (lo <= hi) was given an empty one.
	ErrEmptyInterval = errors.New("scalar: empty interval")
)
