package montecarlo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/percolation/percolation"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// z95 is the conventional two-sided 95% normal quantile.
const z95 = 1.96

// Estimator runs percolation trials and summarises their thresholds.
// It is single-use: configure with New, call Run once, then read results.
type Estimator struct {
	n, t int
	opts Options

	done       bool
	thresholds []float64
	mean       float64
	stddev     float64
	elapsed    time.Duration
}

// New returns an Estimator for t trials on an n×n grid.
// Returns ErrInvalidArgument if n ≤ 0, t ≤ 0 or any option is invalid.
func New(n, t int, opts ...Option) (*Estimator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive (%d)", ErrInvalidArgument, n)
	}
	if t <= 0 {
		return nil, fmt.Errorf("%w: trial count must be positive (%d)", ErrInvalidArgument, t)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Estimator{n: n, t: t, opts: o}, nil
}

// N returns the grid side length.
func (e *Estimator) N() int { return e.n }

// T returns the number of trials.
func (e *Estimator) T() int { return e.t }

// Options returns the effective options.
func (e *Estimator) Options() Options { return e.opts }

// Run executes all trials and computes the summary statistics.
// On error (including ctx cancellation) no results are kept and Run may be
// called again. After a successful Run further calls return ErrAlreadyRun.
func (e *Estimator) Run(ctx context.Context) error {
	if e.done {
		return ErrAlreadyRun
	}
	start := time.Now()
	thresholds := make([]float64, e.t)

	var err error
	if e.opts.Workers == 1 {
		err = e.runSerial(ctx, thresholds)
	} else {
		err = e.runParallel(ctx, thresholds)
	}
	if err != nil {
		return err
	}

	e.thresholds = thresholds
	e.mean = stat.Mean(thresholds, nil)
	if e.t > 1 {
		e.stddev = stat.StdDev(thresholds, nil)
	}
	e.elapsed = time.Since(start)
	e.done = true

	return nil
}

func (e *Estimator) runSerial(ctx context.Context, out []float64) error {
	for i := range out {
		if err := ctx.Err(); err != nil {
			return err
		}
		th, err := e.trial(i)
		if err != nil {
			return err
		}
		out[i] = th
		e.opts.OnTrial(i, th)
	}

	return nil
}

// runParallel fans trials out over at most Workers goroutines. Each trial
// writes only out[i], so no ordering of completions is assumed.
func (e *Estimator) runParallel(ctx context.Context, out []float64) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i := range out {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			th, err := e.trial(i)
			if err != nil {
				return err
			}
			out[i] = th
			e.opts.OnTrial(i, th)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// errgroup cancels gctx on return, so check the caller's ctx directly.
	return ctx.Err()
}

// trial opens random blocked sites of a fresh grid until it percolates and
// returns the fraction of sites opened.
func (e *Estimator) trial(i int) (float64, error) {
	grid, err := percolation.New(e.n)
	if err != nil {
		return 0, fmt.Errorf("montecarlo: trial %d: %w", i, err)
	}
	rng := trialRNG(e.opts.Seed, i)
	for {
		row, col := rng.Intn(e.n), rng.Intn(e.n)
		open, err := grid.IsOpen(row, col)
		if err != nil {
			return 0, fmt.Errorf("montecarlo: trial %d: %w", i, err)
		}
		if open {
			continue
		}
		if err := grid.Open(row, col); err != nil {
			return 0, fmt.Errorf("montecarlo: trial %d: %w", i, err)
		}
		if grid.Percolates() {
			return float64(grid.OpenCount()) / float64(e.n*e.n), nil
		}
	}
}

// Thresholds returns a copy of the per-trial thresholds, in trial order.
func (e *Estimator) Thresholds() ([]float64, error) {
	if !e.done {
		return nil, ErrNotRun
	}
	out := make([]float64, len(e.thresholds))
	copy(out, e.thresholds)

	return out, nil
}

// Mean returns the sample mean of the thresholds.
func (e *Estimator) Mean() (float64, error) {
	if !e.done {
		return 0, ErrNotRun
	}

	return e.mean, nil
}

// StdDev returns the sample standard deviation (n−1 denominator) of the
// thresholds, or 0 when only one trial was run.
func (e *Estimator) StdDev() (float64, error) {
	if !e.done {
		return 0, ErrNotRun
	}

	return e.stddev, nil
}

// ConfidenceLow returns mean − z·stddev/√T.
func (e *Estimator) ConfidenceLow() (float64, error) {
	if !e.done {
		return 0, ErrNotRun
	}

	return e.mean - e.halfWidth(), nil
}

// ConfidenceHigh returns mean + z·stddev/√T.
func (e *Estimator) ConfidenceHigh() (float64, error) {
	if !e.done {
		return 0, ErrNotRun
	}

	return e.mean + e.halfWidth(), nil
}

// Elapsed returns the wall time of the successful Run.
func (e *Estimator) Elapsed() (time.Duration, error) {
	if !e.done {
		return 0, ErrNotRun
	}

	return e.elapsed, nil
}

func (e *Estimator) halfWidth() float64 {
	return zScore(e.opts.Confidence) * e.stddev / math.Sqrt(float64(e.t))
}

// zScore returns the two-sided normal quantile for level. The 95% level
// uses the conventional 1.96.
func zScore(level float64) float64 {
	if level == DefaultConfidence {
		return z95
	}

	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}
