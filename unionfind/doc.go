// Package unionfind implements a disjoint-set (union-find) structure over a
// fixed universe of integer elements [0, size).
//
// What:
//
//   - DisjointSet tracks a partition of the universe into components.
//   - Union merges two components; Connected reports shared membership.
//   - Parents exposes a copy of the parent mapping for diagnostics.
//
// How:
//
//   - Union by size: the root of the lighter tree is linked under the root of
//     the heavier tree, which bounds tree height by O(log n).
//   - Path compression: Find re-points every visited element at the root,
//     giving amortized near-constant (inverse Ackermann) time per operation.
//   - Ties are broken deterministically: q's root is attached under p's root.
//
// Strategies:
//
//   - WeightedCompressed (default): union by size + full path compression.
//   - Weighted:            union by size, no compression.
//   - QuickUnion:          plain linking, no weights, no compression.
//
// The simpler strategies exist only for benchmarking; connectivity answers
// are identical for all of them, only the access cost differs.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Find:      O(α(n)) amortized (WeightedCompressed), O(log n) (Weighted), O(n) (QuickUnion).
//   - Union:     two Finds + O(1).
//   - Connected: two Finds.
//
// Errors:
//
//   - ErrInvalidArgument: negative universe size or unknown strategy.
//   - ErrIndexOutOfRange: element outside [0, size).
//
// A DisjointSet is not safe for concurrent use.
package unionfind
