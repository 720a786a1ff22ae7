// Package tree provides the Tree entity: a rooted, ordered, labeled
// tree node that exclusively owns a sequence of child trees.
//
// What
//
//   - Tree[T] — generic over numeric labels (integers and floats).
//   - Typed construction: New validates every supplied child once, at
//     construction time; Leaf allocates a childless node.
//   - Branch access & mutation: IsLeaf, Degree, Branch, Branches,
//     AddBranch, RemoveBranch — the primitives the algorithm packages
//     (walk, mutate) are built on.
//   - Renderings: Repr (structural, round-trippable by construction),
//     String / Indented (two-space indented multi-line display).
//   - Clone (deep copy) and Equal (structural equality).
//
// Why
//
//   - A strict tree — each node owned by exactly one parent, no sharing,
//     no cycles — is what guarantees every recursive algorithm over it
//     terminates.
//   - Branch order is part of the data: it fixes preorder output and
//     first-match path lookups.
//
// Ownership
//
//	Branches returns a defensive copy of the child slice; the elements
//	are the live nodes. Structural mutation goes through AddBranch and
//	RemoveBranch only. The entity is designed for single-owner
//	sequential use; concurrent mutation is out of scope.
//
// Complexity
//
//   - Construction, IsLeaf, Degree, Branch, SetLabel: O(1).
//   - Branches, RemoveBranch: O(Degree).
//   - Repr, String, Indented, Clone, Equal, Size: O(node count).
//
// Errors
//
//   - ErrNilBranch   — nil child supplied to New or AddBranch.
//   - ErrBranchIndex — branch index outside [0, Degree).
package tree
