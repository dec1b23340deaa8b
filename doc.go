// Package percolation is a small laboratory for site percolation: open
// random cells of an N×N grid until the top row is linked to the bottom row,
// repeat, and estimate the critical open fraction.
//
// 🚀 What is inside?
//
//   - unionfind/   — disjoint-set with union by size and path compression,
//     plus slower reference strategies for benchmarking
//   - percolation/ — the N×N grid with two virtual boundary elements;
//     Open, IsOpen, IsFull, Percolates, Clusters
//   - montecarlo/  — the threshold estimator: T seeded trials, mean,
//     standard deviation and a confidence interval, optionally in parallel
//   - cmd/percstats — command-line front end
//
// ✨ Guarantees
//
//   - 0-indexed coordinates everywhere; bounds errors instead of panics
//   - Reproducible: the same seed gives the same thresholds for any worker count
//   - No logging or global state in library packages
//
// Quick ASCII example (4×4, '~' full, '.' open, '#' blocked):
//
//	#~##
//	#~~#
//	##~#
//	~#~#
//
// percolates through column 1 → 2.
//
//	go run ./cmd/percstats 200 100
package percolation
