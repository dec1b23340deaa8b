// Package montecarlo estimates the percolation threshold of an N×N grid by
// repeated randomized trials.
//
// What:
//
//   - Estimator runs T independent trials. Each trial starts from a fresh
//     all-blocked percolation.Grid, opens uniformly random blocked sites one
//     at a time, and stops at the first open that makes the grid percolate.
//   - The trial's threshold is opened/N², a value in (0, 1].
//   - Mean, StdDev and a normal-approximation confidence interval
//     mean ∓ z·s/√T summarise the T thresholds.
//
// Randomness:
//
//   - Trial i draws from its own math/rand stream derived from (seed, i),
//     so a run is reproducible from its seed and the thresholds do not
//     depend on the worker count or on goroutine scheduling.
//   - Already-open sites are rejected and redrawn. Each site therefore
//     opens at most once per trial, and a trial always ends because a
//     fully open grid percolates.
//
// Concurrency:
//
//   - WithWorkers(k) runs up to k trials at once. Every trial owns its grid;
//     workers share only the output slice, each writing its own slot.
//   - Run honours context cancellation between trials.
//
// Statistics come from gonum.org/v1/gonum/stat. StdDev uses the n−1
// denominator and is defined as 0 for a single trial.
//
// Errors:
//
//   - ErrInvalidArgument: non-positive N or T, or an invalid option.
//   - ErrNotRun:          statistics requested before a successful Run.
//   - ErrAlreadyRun:      Run called on an Estimator that already finished.
package montecarlo
