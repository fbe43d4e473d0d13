package matrix

import "errors"

// Sentinel errors for matrix operations.
var (
	// ErrBadDimension indicates a non-positive row or column count at
	// construction.
	ErrBadDimension = errors.New("matrix: dimensions must be positive")

	// ErrIndexRange indicates a cell index outside the matrix bounds.
	ErrIndexRange = errors.New("matrix: index out of range")

	// ErrOutOfRegion indicates a write of a non-constant value into the
	// region a compressed scheme does not store.
	ErrOutOfRegion = errors.New("matrix: cell outside the stored region")
)
