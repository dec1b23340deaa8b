package unionfind

// Strategy selects how Find and Union maintain the forest.
type Strategy int

const (
	// WeightedCompressed links by component size and compresses paths in Find.
	WeightedCompressed Strategy = iota
	// Weighted links by component size; Find leaves paths untouched.
	Weighted
	// QuickUnion always links q's root under p's root; no compression.
	QuickUnion
)

// String returns the strategy name used in benchmark labels.
func (s Strategy) String() string {
	switch s {
	case WeightedCompressed:
		return "weighted-compressed"
	case Weighted:
		return "weighted"
	case QuickUnion:
		return "quick-union"
	default:
		return "unknown"
	}
}

// valid reports whether s is one of the declared strategies.
func (s Strategy) valid() bool {
	return s >= WeightedCompressed && s <= QuickUnion
}

// DisjointSet is a forest of parent pointers over [0, len(parent)).
// parent[i] == i marks a root; treeSize[r] is the element count of the
// component rooted at r and is meaningless for non-roots.
type DisjointSet struct {
	parent   []int
	treeSize []int
	count    int
	strategy Strategy
}
