package unionfind_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []unionfind.Strategy{
	unionfind.WeightedCompressed,
	unionfind.Weighted,
	unionfind.QuickUnion,
}

// TestNew_Errors verifies that negative sizes and unknown strategies are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := unionfind.New(-1)
	require.ErrorIs(t, err, unionfind.ErrInvalidArgument)

	_, err = unionfind.NewWithStrategy(4, unionfind.Strategy(42))
	require.ErrorIs(t, err, unionfind.ErrInvalidArgument)

	ds, err := unionfind.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, 0, ds.Count())
}

// TestNew_Singletons checks that every element starts as its own root of size 1.
func TestNew_Singletons(t *testing.T) {
	ds, err := unionfind.New(5)
	require.NoError(t, err)

	assert.Equal(t, 5, ds.Count())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ds.Parents())
	for i := 0; i < 5; i++ {
		r, err := ds.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)
		sz, err := ds.Size(i)
		require.NoError(t, err)
		assert.Equal(t, 1, sz)
	}
}

// TestIndexOutOfRange verifies bounds checks on every operation and that a
// rejected Union leaves the forest untouched.
func TestIndexOutOfRange(t *testing.T) {
	ds, err := unionfind.New(3)
	require.NoError(t, err)

	cases := []struct {
		name string
		call func() error
	}{
		{"FindNegative", func() error { _, err := ds.Find(-1); return err }},
		{"FindPastEnd", func() error { _, err := ds.Find(3); return err }},
		{"UnionP", func() error { return ds.Union(3, 0) }},
		{"UnionQ", func() error { return ds.Union(0, 3) }},
		{"ConnectedP", func() error { _, err := ds.Connected(-1, 0); return err }},
		{"ConnectedQ", func() error { _, err := ds.Connected(0, 7); return err }},
		{"Size", func() error { _, err := ds.Size(9); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, unionfind.ErrIndexOutOfRange) {
				t.Errorf("error = %v; want ErrIndexOutOfRange", err)
			}
		})
	}
	assert.Equal(t, []int{0, 1, 2}, ds.Parents(), "failed calls must not mutate")
	assert.Equal(t, 3, ds.Count())
}

// TestUnion_BySizeAndTieBreak pins the linking rule: the lighter root goes
// under the heavier one, and on equal weights q's root goes under p's.
func TestUnion_BySizeAndTieBreak(t *testing.T) {
	ds, err := unionfind.New(4)
	require.NoError(t, err)

	require.NoError(t, ds.Union(1, 0)) // tie: 0 under 1
	assert.Equal(t, []int{1, 1, 2, 3}, ds.Parents())

	require.NoError(t, ds.Union(2, 0)) // {2} lighter than {0,1}: 2 under 1
	assert.Equal(t, []int{1, 1, 1, 3}, ds.Parents())

	sz, err := ds.Size(3)
	require.NoError(t, err)
	assert.Equal(t, 1, sz)
	sz, err = ds.Size(2)
	require.NoError(t, err)
	assert.Equal(t, 3, sz)
	assert.Equal(t, 2, ds.Count())
}

// TestUnion_Idempotent checks that repeating a union changes nothing.
func TestUnion_Idempotent(t *testing.T) {
	ds, err := unionfind.New(3)
	require.NoError(t, err)

	require.NoError(t, ds.Union(0, 1))
	before := ds.Parents()
	require.NoError(t, ds.Union(0, 1))
	require.NoError(t, ds.Union(1, 0))
	require.NoError(t, ds.Union(2, 2))

	assert.Equal(t, before, ds.Parents())
	assert.Equal(t, 2, ds.Count())
}

// TestFind_PathCompression builds a height-3 tree out of pairwise unions and
// checks that a single Find from the deepest leaf flattens the walked path.
func TestFind_PathCompression(t *testing.T) {
	ds, err := unionfind.New(8)
	require.NoError(t, err)

	// Pairwise merges produce a binomial tree of height 3 rooted at 0.
	for _, pq := range [][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {0, 2}, {4, 6}, {0, 4}} {
		require.NoError(t, ds.Union(pq[0], pq[1]))
	}
	before := ds.Parents()
	require.NotEqual(t, 0, before[7])
	require.NotEqual(t, 0, before[before[7]])

	r, err := ds.Find(7)
	require.NoError(t, err)
	assert.Equal(t, 0, r)

	after := ds.Parents()
	for i := before[7]; ; i = before[i] {
		assert.Equal(t, 0, after[i], "element %d on the path must point at the root", i)
		if i == 0 {
			break
		}
	}
	assert.Equal(t, 0, after[7])
}

// TestWeighted_NoCompression verifies that Find leaves the forest untouched
// for the uncompressed strategies.
func TestWeighted_NoCompression(t *testing.T) {
	for _, s := range []unionfind.Strategy{unionfind.Weighted, unionfind.QuickUnion} {
		t.Run(s.String(), func(t *testing.T) {
			ds, err := unionfind.NewWithStrategy(8, s)
			require.NoError(t, err)
			for _, pq := range [][2]int{{0, 1}, {2, 3}, {0, 2}, {4, 5}, {6, 7}, {4, 6}, {0, 4}} {
				require.NoError(t, ds.Union(pq[0], pq[1]))
			}
			before := ds.Parents()
			for i := 0; i < 8; i++ {
				_, err := ds.Find(i)
				require.NoError(t, err)
			}
			assert.Equal(t, before, ds.Parents())
		})
	}
}

// TestConnected_MatchesReference runs random unions against every strategy and
// compares Connected with a naive label-propagation partition. Along the way it
// checks reflexivity, symmetry and the component count.
func TestConnected_MatchesReference(t *testing.T) {
	const n = 60
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			ds, err := unionfind.NewWithStrategy(n, s)
			require.NoError(t, err)

			label := make([]int, n)
			for i := range label {
				label[i] = i
			}
			for step := 0; step < 80; step++ {
				p, q := rng.Intn(n), rng.Intn(n)
				require.NoError(t, ds.Union(p, q))
				lp, lq := label[p], label[q]
				for i := range label {
					if label[i] == lq {
						label[i] = lp
					}
				}
			}

			distinct := map[int]struct{}{}
			for i := 0; i < n; i++ {
				distinct[label[i]] = struct{}{}
				for j := 0; j < n; j++ {
					got, err := ds.Connected(i, j)
					require.NoError(t, err)
					require.Equal(t, label[i] == label[j], got, "Connected(%d,%d)", i, j)
					back, _ := ds.Connected(j, i)
					require.Equal(t, got, back, "symmetry (%d,%d)", i, j)
				}
				self, _ := ds.Connected(i, i)
				require.True(t, self)
			}
			assert.Equal(t, len(distinct), ds.Count())
		})
	}
}

// TestSize_EqualsComponentCardinality checks the weight invariant on roots.
func TestSize_EqualsComponentCardinality(t *testing.T) {
	ds, err := unionfind.New(10)
	require.NoError(t, err)
	for _, pq := range [][2]int{{0, 1}, {1, 2}, {3, 4}, {5, 6}, {6, 7}, {7, 8}, {2, 8}} {
		require.NoError(t, ds.Union(pq[0], pq[1]))
	}

	members := map[int]int{}
	for i := 0; i < 10; i++ {
		r, err := ds.Find(i)
		require.NoError(t, err)
		members[r]++
	}
	for i := 0; i < 10; i++ {
		r, _ := ds.Find(i)
		sz, err := ds.Size(i)
		require.NoError(t, err)
		assert.Equal(t, members[r], sz, "Size(%d)", i)
	}
}
