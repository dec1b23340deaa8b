package percolation

import "github.com/katalvlaran/percolation/unionfind"

// Site is a 0-indexed grid coordinate.
type Site struct {
	Row, Col int
}

// Glyphs used by Grid.String.
const (
	glyphBlocked = '#'
	glyphOpen    = '.'
	glyphFull    = '~'
)

// Grid is an N×N percolation system. open[row*n+col] records site state;
// uf holds n*n cell elements plus the top and bottom virtual elements.
// The Grid owns uf exclusively.
type Grid struct {
	n         int
	open      []bool
	openCount int
	uf        *unionfind.DisjointSet
	top       int
	bottom    int
}

// neighborOffsets lists the 4-connected (dRow, dCol) steps: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
