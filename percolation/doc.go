// Package percolation models site percolation on an N×N grid.
//
// What:
//
//   - Grid holds N×N sites, each Blocked or Open. Sites start Blocked and
//     open at most once.
//   - A site is Full when it is Open and joined to the top row through a
//     chain of open orthogonal neighbours.
//   - The grid Percolates when some Full site lies in the bottom row.
//
// How:
//
//   - Each cell (row, col) maps to element row*N+col of a unionfind.DisjointSet.
//   - Two virtual elements sit outside the cell range: top at N² and bottom
//     at N²+1. Opening a row-0 site unions it with top; opening a row-(N-1)
//     site unions it with bottom.
//   - Percolates is then a single Connected(top, bottom) query, evaluated on
//     demand.
//
// Coordinates are 0-indexed everywhere: row and col must lie in [0, N).
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Open:       at most 6 unions, O(α(N²)) amortized each.
//   - IsOpen:     O(1).
//   - IsFull:     one Connected query.
//   - Percolates: one Connected query.
//   - Clusters:   O(N² · α(N²)).
//
// Errors:
//
//   - ErrInvalidArgument: non-positive grid size.
//   - ErrIndexOutOfRange: row or col outside [0, N).
//
// A Grid is not safe for concurrent use; give every goroutine its own Grid.
package percolation
