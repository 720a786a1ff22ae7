// Package tree defines the central Tree entity: a rooted, ordered,
// labeled node owning a sequence of child trees ("branches").
//
// This file declares the Label constraint, sentinel errors, and the
// New / Leaf constructors.
//
// Errors:
//
//	ErrNilBranch   - a supplied or added child is nil.
//	ErrBranchIndex - a branch index is out of range.
package tree

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for tree construction and branch operations.
var (
	// ErrNilBranch indicates a nil child was supplied to New or AddBranch.
	ErrNilBranch = errors.New("tree: branch must be a non-nil Tree")

	// ErrBranchIndex indicates a branch index outside [0, Degree).
	ErrBranchIndex = errors.New("tree: branch index out of range")
)

// Label constrains tree labels to the numeric types the algorithms need:
// addition and ordering for path sums, equality for path lookup, and
// multiplication for label squaring.
type Label interface {
	constraints.Integer | constraints.Float
}

// Tree is an ordered, rooted, labeled tree node. Each node exclusively
// owns its branch slice: no sharing between nodes, no cycles. Branch
// order is semantically meaningful — it fixes preorder output and the
// search order of path lookups.
//
// A Tree is a leaf iff it has no branches; that property is derived,
// never stored.
type Tree[T Label] struct {
	label    T          // node label
	branches []*Tree[T] // ordered children, exclusively owned
}

// New constructs a Tree with the given label and optional children.
// Every supplied child is validated to be non-nil once, at construction
// time; the first nil child yields ErrNilBranch. The children are copied
// into a fresh backing slice, so each Tree owns an independent branch
// container even when constructed with no children.
// Complexity: O(len(branches)).
func New[T Label](label T, branches ...*Tree[T]) (*Tree[T], error) {
	// 1. Typed construction: reject nil children up front, not per traversal.
	for _, b := range branches {
		if b == nil {
			return nil, ErrNilBranch
		}
	}

	// 2. Fresh backing slice per instance; never alias the caller's slice.
	owned := make([]*Tree[T], len(branches))
	copy(owned, branches)

	return &Tree[T]{label: label, branches: owned}, nil
}

// Leaf constructs a Tree with no branches. Infallible by contract.
// Complexity: O(1).
func Leaf[T Label](label T) *Tree[T] {
	return &Tree[T]{label: label, branches: make([]*Tree[T], 0)}
}
