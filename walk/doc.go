// Package walk provides the read-only recursive algorithms over
// tree.Tree: preorder listing, first-match path lookup, and maximum
// root-to-leaf path sum.
//
// What
//
//   - Preorder(t, opts...): every label, depth-first, root before
//     branches, branches in listed order.
//   - FindPath(t, x, opts...): labels from the root to the preorder-first
//     node labeled x, inclusive; ErrLabelNotFound when absent.
//   - MaxPathSum(t, opts...): the best root-to-leaf label sum.
//
// All three accept functional options:
//
//   - WithContext(ctx) — cancellation checked once per reached node.
//   - WithOnVisit(fn)  — preorder hook on each label; error aborts.
//
// Why
//
//   - Preorder is the canonical flattening of an ordered tree; its
//     output order is the tree's documentation of itself.
//   - FindPath answers "how do I reach x from the root" in one pass.
//   - MaxPathSum is the 1-dimensional ancestor of weighted-path
//     optimization: pick the best branch at every level.
//
// Determinism
//
//	Branch insertion order fully fixes Preorder output and FindPath's
//	winner among duplicate labels. MaxPathSum ties between branches are
//	unobservable: only the sum is returned.
//
// Complexity (N = node count, D = depth)
//
//   - Time:   O(N) for each algorithm (hook must be O(1))
//   - Memory: O(D) recursion stack; Preorder additionally O(N) output
//
// Errors
//
//   - ErrNilTree       — nil root.
//   - ErrLabelNotFound — FindPath's explicit absent-path signal.
//   - context.Canceled / DeadlineExceeded — via WithContext.
//   - any error returned by the OnVisit hook, wrapped with its label.
package walk
