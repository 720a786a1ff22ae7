package walk

import (
	"github.com/katalvlaran/arbor/tree"
)

// Preorder returns every label in t's subtree in depth-first,
// root-before-branches, branch-order traversal: t's own label followed
// by the full preorder sequence of each branch, concatenated in order.
//
// The traversal is pure — no node is mutated — and deterministic:
// branch insertion order fully fixes the output.
//
// Returns ErrNilTree for a nil root, the context error if the
// traversal is cancelled, or any error returned by the OnVisit hook.
// Complexity: O(node count) time and output size.
func Preorder[T tree.Label](t *tree.Tree[T], opts ...Option[T]) ([]T, error) {
	// 1. Validate root and resolve options.
	w, err := newWalker(t, opts)
	if err != nil {
		return nil, err
	}

	// 2. Collect labels with a capacity hint.
	out := make([]T, 0, t.Size())
	if err = w.preorder(t, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// preorder appends t's label, then recurses into each branch in order.
func (w *walker[T]) preorder(t *tree.Tree[T], out *[]T) error {
	// 1. Cancellation check and visit hook.
	if err := w.step(t.Label()); err != nil {
		return err
	}

	// 2. Root before branches.
	*out = append(*out, t.Label())

	// 3. Branches in listed order, each contributing its full sequence.
	for _, b := range t.Branches() {
		if err := w.preorder(b, out); err != nil {
			return err
		}
	}

	return nil
}
