package unionfind

import "errors"

var (
	// ErrInvalidArgument indicates a negative universe size or an unknown strategy.
	ErrInvalidArgument = errors.New("unionfind: invalid argument")
	// ErrIndexOutOfRange indicates an element outside [0, size).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)
