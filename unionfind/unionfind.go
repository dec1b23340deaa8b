package unionfind

import "fmt"

// New returns a DisjointSet of size singleton components using the default
// WeightedCompressed strategy.
// Returns ErrInvalidArgument if size < 0. A size of 0 yields an empty universe.
// Complexity: O(size) time and memory.
func New(size int) (*DisjointSet, error) {
	return NewWithStrategy(size, WeightedCompressed)
}

// NewWithStrategy is New with an explicit Strategy. It is intended for
// benchmarking alternatives; production callers should use New.
// Returns ErrInvalidArgument if size < 0 or s is not a declared Strategy.
func NewWithStrategy(size int, s Strategy) (*DisjointSet, error) {
	if size < 0 {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidArgument)
	}
	if !s.valid() {
		return nil, fmt.Errorf("strategy %d: %w", int(s), ErrInvalidArgument)
	}
	ds := &DisjointSet{
		parent:   make([]int, size),
		treeSize: make([]int, size),
		count:    size,
		strategy: s,
	}
	for i := 0; i < size; i++ {
		ds.parent[i] = i
		ds.treeSize[i] = 1
	}

	return ds, nil
}

// Len returns the size of the universe.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the number of components. It starts at Len and drops by one
// on every Union that merges two distinct components.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Strategy returns the strategy the set was built with.
func (ds *DisjointSet) Strategy() Strategy {
	return ds.strategy
}

// Find returns the root of i's component.
// Under WeightedCompressed every element on the path from i to the root is
// re-pointed directly at the root.
// Returns ErrIndexOutOfRange if i ∉ [0, Len()).
func (ds *DisjointSet) Find(i int) (int, error) {
	if err := ds.validate(i); err != nil {
		return 0, err
	}

	return ds.root(i), nil
}

// Union merges the components of p and q. It is a no-op if they already
// share a root. The lighter tree is attached under the heavier root; on a tie
// q's root goes under p's root.
// Both indices are validated before the forest is touched.
func (ds *DisjointSet) Union(p, q int) error {
	if err := ds.validate(p); err != nil {
		return err
	}
	if err := ds.validate(q); err != nil {
		return err
	}

	rootP, rootQ := ds.root(p), ds.root(q)
	if rootP == rootQ {
		return nil
	}
	if ds.strategy != QuickUnion && ds.treeSize[rootP] < ds.treeSize[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	// rootQ is now the root being attached.
	ds.parent[rootQ] = rootP
	ds.treeSize[rootP] += ds.treeSize[rootQ]
	ds.count--

	return nil
}

// Connected reports whether p and q belong to the same component.
func (ds *DisjointSet) Connected(p, q int) (bool, error) {
	if err := ds.validate(p); err != nil {
		return false, err
	}
	if err := ds.validate(q); err != nil {
		return false, err
	}

	return ds.root(p) == ds.root(q), nil
}

// Size returns the number of elements in i's component.
func (ds *DisjointSet) Size(i int) (int, error) {
	if err := ds.validate(i); err != nil {
		return 0, err
	}

	return ds.treeSize[ds.root(i)], nil
}

// Parents returns a copy of the current parent mapping: Parents()[i] is the
// parent of i, and roots map to themselves. The result reflects any path
// compression performed so far and is meant for diagnostics only.
// Complexity: O(n).
func (ds *DisjointSet) Parents() []int {
	out := make([]int, len(ds.parent))
	copy(out, ds.parent)

	return out
}

// root walks parent pointers from i to its root. i must be valid.
func (ds *DisjointSet) root(i int) int {
	r := i
	for ds.parent[r] != r {
		r = ds.parent[r]
	}
	if ds.strategy != WeightedCompressed {
		return r
	}
	// Second pass: point every visited element at r.
	for ds.parent[i] != r {
		next := ds.parent[i]
		ds.parent[i] = r
		i = next
	}

	return r
}

func (ds *DisjointSet) validate(i int) error {
	if i < 0 || i >= len(ds.parent) {
		return fmt.Errorf("element %d not in [0,%d): %w", i, len(ds.parent), ErrIndexOutOfRange)
	}

	return nil
}
