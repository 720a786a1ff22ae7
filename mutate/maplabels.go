package mutate

import (
	"github.com/katalvlaran/arbor/tree"
)

// MapLabels mutates t in place, replacing every label in its subtree
// with fn(label): the root first, then each branch in order, depth-first.
// The branch structure is never touched — only labels change.
//
// Returns ErrNilTree for a nil root and ErrNilTransform for a nil fn;
// over valid inputs the mutation is total.
// Complexity: O(node count) time, O(depth) stack.
func MapLabels[T tree.Label](t *tree.Tree[T], fn func(T) T) error {
	// 1. Validate before touching anything.
	if t == nil {
		return ErrNilTree
	}
	if fn == nil {
		return ErrNilTransform
	}

	// 2. Rewrite labels top-down.
	mapNode(t, fn)

	return nil
}

// SquareLabels mutates t in place, replacing every label with its
// square, root first, branches in order. It is MapLabels with the
// squaring transform.
//
// Returns ErrNilTree for a nil root.
// Complexity: O(node count) time, O(depth) stack.
func SquareLabels[T tree.Label](t *tree.Tree[T]) error {
	return MapLabels(t, func(v T) T { return v * v })
}

// mapNode applies fn to t's label, then recurses into each branch.
func mapNode[T tree.Label](t *tree.Tree[T], fn func(T) T) {
	t.SetLabel(fn(t.Label()))
	for _, b := range t.Branches() {
		mapNode(b, fn)
	}
}
