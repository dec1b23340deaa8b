package montecarlo

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive grid size or trial count,
	// or an invalid option value.
	ErrInvalidArgument = errors.New("montecarlo: invalid argument")
	// ErrNotRun is returned by statistics accessors before Run has completed.
	ErrNotRun = errors.New("montecarlo: estimator has not been run")
	// ErrAlreadyRun is returned when Run is called a second time.
	ErrAlreadyRun = errors.New("montecarlo: estimator already run")
)
