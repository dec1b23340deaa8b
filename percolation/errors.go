package percolation

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive grid size.
	ErrInvalidArgument = errors.New("percolation: grid size must be positive")
	// ErrIndexOutOfRange indicates a row or column outside [0, N).
	ErrIndexOutOfRange = errors.New("percolation: site index out of range")
)
