package montecarlo

import (
	"fmt"
	"time"

	"github.com/tidwall/sjson"
)

// Report is an immutable summary of a finished run.
type Report struct {
	N          int
	Trials     int
	Seed       int64
	Workers    int
	Mean       float64
	StdDev     float64
	Confidence float64 // level, e.g. 0.95
	Low, High  float64
	Elapsed    time.Duration
}

// Report collects the run's summary. Returns ErrNotRun before Run.
func (e *Estimator) Report() (Report, error) {
	if !e.done {
		return Report{}, ErrNotRun
	}
	hw := e.halfWidth()

	return Report{
		N:          e.n,
		Trials:     e.t,
		Seed:       e.opts.Seed,
		Workers:    e.opts.Workers,
		Mean:       e.mean,
		StdDev:     e.stddev,
		Confidence: e.opts.Confidence,
		Low:        e.mean - hw,
		High:       e.mean + hw,
		Elapsed:    e.elapsed,
	}, nil
}

// JSON encodes the report as a flat JSON object with a nested
// "confidence" object {level, low, high}.
func (r Report) JSON() ([]byte, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"n", r.N},
		{"trials", r.Trials},
		{"seed", r.Seed},
		{"workers", r.Workers},
		{"mean", r.Mean},
		{"stddev", r.StdDev},
		{"confidence.level", r.Confidence},
		{"confidence.low", r.Low},
		{"confidence.high", r.High},
		{"elapsed_seconds", r.Elapsed.Seconds()},
	}
	out := []byte("{}")
	for _, f := range fields {
		var err error
		if out, err = sjson.SetBytes(out, f.path, f.value); err != nil {
			return nil, fmt.Errorf("montecarlo: encode %s: %w", f.path, err)
		}
	}

	return out, nil
}
