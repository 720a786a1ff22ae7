// Package walk defines options and sentinel errors for the read-only
// tree algorithms: Preorder, FindPath, and MaxPathSum.
package walk

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

var (
	// ErrNilTree is returned when a nil root is passed to Preorder,
	// FindPath, or MaxPathSum.
	ErrNilTree = errors.New("walk: tree is nil")

	// ErrLabelNotFound indicates that no node in the subtree carries the
	// requested label. It is the explicit "absent path" signal of
	// FindPath, distinguishable from any valid path by construction.
	ErrLabelNotFound = errors.New("walk: label not found in tree")
)

// Option configures optional behavior of a traversal.
// Use with Preorder(t, opts...), FindPath(t, x, opts...), or
// MaxPathSum(t, opts...).
type Option[T tree.Label] func(*Options[T])

// Options holds configurable parameters shared by the walk algorithms.
// Complexity stays O(node count) when the hook is O(1).
type Options[T tree.Label] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the traversal early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on each node's label in preorder
	// (root before branches, branches in listed order). Returning an
	// error aborts the traversal with that error.
	OnVisit func(label T) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No visit hook
func DefaultOptions[T tree.Label]() Options[T] {
	return Options[T]{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[T tree.Label](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a preorder hook.
// The hook is called when a node is first reached, before its branches.
func WithOnVisit[T tree.Label](fn func(label T) error) Option[T] {
	return func(o *Options[T]) {
		o.OnVisit = fn
	}
}

// walker carries resolved options through a recursive traversal.
type walker[T tree.Label] struct {
	opts Options[T]
}

// newWalker validates the root and resolves opts against the defaults.
func newWalker[T tree.Label](t *tree.Tree[T], opts []Option[T]) (*walker[T], error) {
	if t == nil {
		return nil, ErrNilTree
	}
	o := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker[T]{opts: o}, nil
}

// step runs the per-node preamble: cancellation check, then the visit
// hook. Every algorithm calls it exactly once per reached node.
func (w *walker[T]) step(label T) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(label); err != nil {
			return fmt.Errorf("walk: OnVisit hook for %v: %w", label, err)
		}
	}

	return nil
}
