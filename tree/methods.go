package tree

// Label returns the node's label.
// Complexity: O(1).
func (t *Tree[T]) Label() T {
	return t.label
}

// SetLabel replaces the node's label in place.
// Complexity: O(1).
func (t *Tree[T]) SetLabel(v T) {
	t.label = v
}

// IsLeaf reports whether the node has no branches.
// Complexity: O(1).
func (t *Tree[T]) IsLeaf() bool {
	return len(t.branches) == 0
}

// Degree returns the number of branches directly under the node.
// Complexity: O(1).
func (t *Tree[T]) Degree() int {
	return len(t.branches)
}

// Branch returns the i-th branch in order.
// Returns ErrBranchIndex if i is outside [0, Degree).
// Complexity: O(1).
func (t *Tree[T]) Branch(i int) (*Tree[T], error) {
	if i < 0 || i >= len(t.branches) {
		return nil, ErrBranchIndex
	}

	return t.branches[i], nil
}

// Branches returns the node's branches in order as a fresh slice.
// The slice is a defensive copy — appending to or reordering it does not
// affect the tree — but the elements are the live child nodes.
// Complexity: O(Degree) time and space.
func (t *Tree[T]) Branches() []*Tree[T] {
	out := make([]*Tree[T], len(t.branches))
	copy(out, t.branches)

	return out
}

// AddBranch appends b as the node's last branch.
// Returns ErrNilBranch if b is nil.
// Complexity: amortized O(1).
func (t *Tree[T]) AddBranch(b *Tree[T]) error {
	if b == nil {
		return ErrNilBranch
	}
	t.branches = append(t.branches, b)

	return nil
}

// RemoveBranch removes exactly the i-th branch, preserving the order of
// the remaining branches. Returns ErrBranchIndex if i is outside
// [0, Degree). The removed subtree is simply unlinked, not destroyed.
// Complexity: O(Degree).
func (t *Tree[T]) RemoveBranch(i int) error {
	if i < 0 || i >= len(t.branches) {
		return ErrBranchIndex
	}
	t.branches = append(t.branches[:i], t.branches[i+1:]...)

	return nil
}

// Size returns the number of nodes in the subtree rooted at t,
// counting t itself.
// Complexity: O(node count).
func (t *Tree[T]) Size() int {
	n := 1
	for _, b := range t.branches {
		n += b.Size()
	}

	return n
}
