package tree

// Clone returns a deep copy of the subtree rooted at t: every node is
// reallocated, every branch slice is fresh. The clone shares no state
// with the original, so mutating either side never affects the other.
// Complexity: O(node count).
func (t *Tree[T]) Clone() *Tree[T] {
	branches := make([]*Tree[T], len(t.branches))
	for i, b := range t.branches {
		branches[i] = b.Clone()
	}

	return &Tree[T]{label: t.label, branches: branches}
}

// Equal reports structural equality: same label, same number of
// branches, and pairwise-Equal branches in the same order. Node identity
// is irrelevant — a Clone is always Equal to its original.
// Complexity: O(min node count).
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if other == nil {
		return false
	}
	if t.label != other.label || len(t.branches) != len(other.branches) {
		return false
	}
	for i, b := range t.branches {
		if !b.Equal(other.branches[i]) {
			return false
		}
	}

	return true
}
