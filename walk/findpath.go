package walk

import (
	"github.com/katalvlaran/arbor/tree"
)

// FindPath returns the ordered labels from the root t down to the first
// node in preorder (root before branches, branches in listed order,
// depth-first) whose label equals x, inclusive of both endpoints.
//
// When multiple nodes carry x, search order decides the winner: the
// preorder-first match is returned. When no node carries x, FindPath
// returns a nil path and ErrLabelNotFound — an explicit absent signal
// that can never collide with a real label.
//
// Returns ErrNilTree for a nil root, the context error if cancelled, or
// any error returned by the OnVisit hook.
// Complexity: O(node count) time, O(path length) output.
func FindPath[T tree.Label](t *tree.Tree[T], x T, opts ...Option[T]) ([]T, error) {
	// 1. Validate root and resolve options.
	w, err := newWalker(t, opts)
	if err != nil {
		return nil, err
	}

	// 2. Recursive preorder search.
	path, err := w.findPath(t, x)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, ErrLabelNotFound
	}

	return path, nil
}

// findPath returns the root-to-match label sequence, or nil when the
// subtree holds no match. A nil slice here means "absent", never an
// empty valid path: every found path carries at least one label.
func (w *walker[T]) findPath(t *tree.Tree[T], x T) ([]T, error) {
	// 1. Cancellation check and visit hook.
	if err := w.step(t.Label()); err != nil {
		return nil, err
	}

	// 2. Base case: the root itself matches.
	if t.Label() == x {
		return []T{t.Label()}, nil
	}

	// 3. First branch (in order) with a match wins; prepend our label.
	for _, b := range t.Branches() {
		sub, err := w.findPath(b, x)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			return append([]T{t.Label()}, sub...), nil
		}
	}

	// 4. No branch matched: fall through with the absent signal.
	return nil, nil
}
