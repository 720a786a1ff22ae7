package mutate

import (
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

// Prune mutates t in place so that every node in its subtree keeps at
// most n branches. At each node, while the branch count exceeds n, the
// single branch with the maximum label is removed; among equal maxima
// the first occurrence in branch order is the one removed. After a
// node's own branches are trimmed, the same rule is applied to each
// remaining branch in order, with the same limit.
//
// Leaves are untouched, no node is invented, and every surviving branch
// was present before pruning. The removed subtrees are unlinked whole.
//
// Returns ErrNilTree for a nil root and ErrNegativeLimit for n < 0;
// over valid inputs the mutation is total — it never fails partway.
// Complexity: O(node count × max degree) time, O(depth) stack.
func Prune[T tree.Label](t *tree.Tree[T], n int) error {
	// 1. Validate before touching anything: no partial mutation.
	if t == nil {
		return ErrNilTree
	}
	if n < 0 {
		return fmt.Errorf("mutate: limit %d: %w", n, ErrNegativeLimit)
	}

	// 2. Trim top-down.
	pruneNode(t, n)

	return nil
}

// pruneNode trims t's own branches to at most n, then recurses into the
// survivors in order.
func pruneNode[T tree.Label](t *tree.Tree[T], n int) {
	// 1. Repeatedly drop the max-labeled branch while over the limit.
	for t.Degree() > n {
		branches := t.Branches()
		largest := 0
		for i, b := range branches[1:] {
			// Strict comparison keeps the first occurrence among ties.
			if b.Label() > branches[largest].Label() {
				largest = i + 1
			}
		}
		// Index is in range by construction; the error cannot fire.
		_ = t.RemoveBranch(largest)
	}

	// 2. Same limit at every depth, remaining branches in order.
	for _, b := range t.Branches() {
		pruneNode(b, n)
	}
}
