package montecarlo

import "fmt"

// DefaultConfidence is the default two-sided confidence level.
const DefaultConfidence = 0.95

// Option configures an Estimator via functional arguments.
// An invalid Option is recorded and surfaced as ErrInvalidArgument by New.
type Option func(*Options)

// Options holds the tunables of an Estimator.
type Options struct {
	// Seed selects the random streams. 0 means the fixed default seed, so an
	// unconfigured run is still reproducible.
	Seed int64

	// Workers is the maximum number of trials run at once (≥1).
	Workers int

	// Confidence is the two-sided confidence level in (0, 1).
	Confidence float64

	// OnTrial, if set, is called after each trial with its index and
	// threshold. With Workers > 1 it is called from several goroutines.
	OnTrial func(trial int, threshold float64)

	err error
}

// DefaultOptions returns Options with Seed 0, one worker, 95% confidence and
// no trial hook.
func DefaultOptions() Options {
	return Options{
		Seed:       0,
		Workers:    1,
		Confidence: DefaultConfidence,
		OnTrial:    func(int, float64) {},
	}
}

// WithSeed sets the base seed for the per-trial random streams.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers bounds trial concurrency.
//
//	k ≥ 1: run up to k trials at once
//	k < 1: invalid option → ErrInvalidArgument
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥1 (%d)", ErrInvalidArgument, k)
			return
		}
		o.Workers = k
	}
}

// WithConfidence sets the confidence level used by ConfidenceLow and
// ConfidenceHigh. level must lie strictly between 0 and 1.
func WithConfidence(level float64) Option {
	return func(o *Options) {
		if !(level > 0 && level < 1) {
			o.err = fmt.Errorf("%w: confidence must be in (0,1) (%v)", ErrInvalidArgument, level)
			return
		}
		o.Confidence = level
	}
}

// WithOnTrial registers a per-trial callback. A nil fn is ignored.
func WithOnTrial(fn func(trial int, threshold float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrial = fn
		}
	}
}
