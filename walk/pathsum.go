package walk

import (
	"github.com/katalvlaran/arbor/tree"
)

// MaxPathSum returns the maximum sum of labels along any path from the
// root t to one of its leaves, inclusive of both endpoints.
//
// A leaf returns its own label. An inner node returns its label plus the
// best MaxPathSum among its branches. Ties between branches are
// unobservable in the result: only the sum is returned, and equal maxima
// produce the same sum whichever branch is taken.
//
// Returns ErrNilTree for a nil root, the context error if cancelled, or
// any error returned by the OnVisit hook.
// Complexity: O(node count) time, O(depth) stack.
func MaxPathSum[T tree.Label](t *tree.Tree[T], opts ...Option[T]) (T, error) {
	var zero T

	// 1. Validate root and resolve options.
	w, err := newWalker(t, opts)
	if err != nil {
		return zero, err
	}

	// 2. Recursive best-path accumulation.
	sum, err := w.maxPathSum(t)
	if err != nil {
		return zero, err
	}

	return sum, nil
}

// maxPathSum computes the best root-to-leaf label sum of t's subtree.
func (w *walker[T]) maxPathSum(t *tree.Tree[T]) (T, error) {
	var zero T

	// 1. Cancellation check and visit hook.
	if err := w.step(t.Label()); err != nil {
		return zero, err
	}

	// 2. Base case: a leaf's best path is itself.
	if t.IsLeaf() {
		return t.Label(), nil
	}

	// 3. Best branch sum, branches in listed order.
	branches := t.Branches()
	best, err := w.maxPathSum(branches[0])
	if err != nil {
		return zero, err
	}
	for _, b := range branches[1:] {
		sum, serr := w.maxPathSum(b)
		if serr != nil {
			return zero, serr
		}
		if sum > best {
			best = sum
		}
	}

	// 4. Root label rides on top of the winning branch.
	return t.Label() + best, nil
}
