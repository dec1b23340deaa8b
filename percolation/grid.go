package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New returns an n×n Grid with every site Blocked.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidArgument)
	}
	cells := n * n
	uf, err := unionfind.New(cells + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: allocate union-find: %w", err)
	}

	return &Grid{
		n:      n,
		open:   make([]bool, cells),
		uf:     uf,
		top:    cells,
		bottom: cells + 1,
	}, nil
}

// N returns the side length of the grid.
func (g *Grid) N() int {
	return g.n
}

// OpenCount returns the number of Open sites.
func (g *Grid) OpenCount() int {
	return g.openCount
}

// InBounds reports whether (row, col) lies within [0, N)×[0, N).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// Open marks (row, col) Open and joins it with top (row 0), bottom (row N-1)
// and every Open orthogonal neighbour. Opening an Open site is a no-op.
// Returns ErrIndexOutOfRange without touching the grid if (row, col) is
// outside the grid.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	i := g.index(row, col)
	if g.open[i] {
		return nil
	}
	g.open[i] = true
	g.openCount++

	if row == 0 {
		g.union(i, g.top)
	}
	if row == g.n-1 {
		g.union(i, g.bottom)
	}
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		if j := g.index(nr, nc); g.open[j] {
			g.union(i, j)
		}
	}

	return nil
}

// IsOpen reports whether (row, col) is Open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether (row, col) is Open and connected to the top row.
// A Blocked site is never Full.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	i := g.index(row, col)
	if !g.open[i] {
		return false, nil
	}

	return g.connected(i, g.top), nil
}

// Percolates reports whether top and bottom share a component, i.e. whether
// a chain of open sites links row 0 to row N-1.
// The answer is computed on each call; nothing is cached.
func (g *Grid) Percolates() bool {
	return g.connected(g.top, g.bottom)
}

// index maps (row, col) to the row-major element index row*N + col.
func (g *Grid) index(row, col int) int {
	return row*g.n + col
}

// Coordinate converts a row-major cell index back to a Site.
func (g *Grid) Coordinate(idx int) Site {
	return Site{Row: idx / g.n, Col: idx % g.n}
}

func (g *Grid) validate(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("site (%d,%d) not in [0,%d): %w", row, col, g.n, ErrIndexOutOfRange)
	}

	return nil
}

// union and connected operate on indices the Grid produced itself; an error
// from the DisjointSet here is a bug in Grid, not a caller mistake.
func (g *Grid) union(p, q int) {
	if err := g.uf.Union(p, q); err != nil {
		panic(fmt.Sprintf("percolation: internal union(%d,%d): %v", p, q, err))
	}
}

func (g *Grid) connected(p, q int) bool {
	ok, err := g.uf.Connected(p, q)
	if err != nil {
		panic(fmt.Sprintf("percolation: internal connected(%d,%d): %v", p, q, err))
	}

	return ok
}
