package matrix

import "errors"

// Sentinel errors for matrix construction. Algorithms downstream (parser,
// solver) are expected to validate dimensions once at construction time;
// these are not returned from the hot-path Get/Set accessors, which trust
// the caller to have supplied a backing slice of size n*n (or
// n*(n+1)/2 for the triangular store).
var (
	// ErrBadShape indicates a requested dimension was <= 0.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDataSizeMismatch indicates a caller-supplied backing slice does
	// not have the expected n*n (or n*(n+1)/2) length.
	ErrDataSizeMismatch = errors.New("matrix: backing data size mismatch")
)
