// Package mutate provides the in-place transforms over tree.Tree:
// branch-limit pruning and whole-tree label rewrites.
//
// What
//
//   - Prune(t, n): trim every node to at most n branches, removing the
//     max-labeled branch first (first occurrence among ties), top-down.
//   - SquareLabels(t): replace every label with its square, root first,
//     branches in order.
//   - MapLabels(t, fn): the generalization — apply fn to every label in
//     the same order; SquareLabels is MapLabels with v*v.
//
// Why
//
//   - Pruning keeps cheap branches: dropping the largest labels down to
//     a branching limit is the greedy cut that preserves low-value paths.
//   - Label rewrites in place avoid rebuilding the tree for pointwise
//     transforms.
//
// Ownership
//
//	Both transforms mutate the tree the caller still holds. Treat the
//	tree as exclusively owned by its single logical owner at mutation
//	time; concurrent mutation is out of scope. Over valid inputs every
//	transform is total — validation happens before the first mutation,
//	so no call fails partway through.
//
// Determinism
//
//	Prune's tie-break is pinned: among branches sharing the maximum
//	label, the first in branch order is removed.
//
// Complexity (N = node count, B = max degree, D = depth)
//
//   - Prune:        O(N×B) time, O(D) stack.
//   - SquareLabels / MapLabels: O(N) time, O(D) stack.
//
// Errors
//
//   - ErrNilTree       — nil root.
//   - ErrNegativeLimit — Prune called with n < 0.
//   - ErrNilTransform  — MapLabels called with a nil fn.
package mutate
