package percolation

import "strings"

// Clusters groups the Open sites into connected clusters.
// Clusters appear in order of their first site in row-major order, and the
// sites inside a cluster are row-major as well, so the result is fully
// deterministic. Two clusters that both touch the top (or the bottom) row
// are merged through the virtual element and come back as one cluster.
//
// Time:   O(N²·α(N²)).
// Memory: O(N²).
func (g *Grid) Clusters() [][]Site {
	slot := make(map[int]int) // root -> position in out
	var out [][]Site

	for i, isOpen := range g.open {
		if !isOpen {
			continue
		}
		r, err := g.uf.Find(i)
		if err != nil {
			panic("percolation: internal find: " + err.Error())
		}
		k, seen := slot[r]
		if !seen {
			k = len(out)
			slot[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], g.Coordinate(i))
	}

	return out
}

// String renders the grid one row per line: '#' Blocked, '.' Open, '~' Full.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for row := 0; row < g.n; row++ {
		for col := 0; col < g.n; col++ {
			i := g.index(row, col)
			switch {
			case !g.open[i]:
				sb.WriteByte(glyphBlocked)
			case g.connected(i, g.top):
				sb.WriteByte(glyphFull)
			default:
				sb.WriteByte(glyphOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
