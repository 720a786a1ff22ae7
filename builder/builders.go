// builders.go — deterministic tree constructors.
package builder

import (
	"github.com/katalvlaran/arbor/tree"
)

// Path builds a degenerate chain: labels[0] at the root, each following
// label nested one level deeper, the last one a leaf.
// Returns ErrBadSize when no labels are given.
// Complexity: O(len(labels)).
func Path(labels ...int64) (*tree.Tree[int64], error) {
	// 1. A path needs at least its root.
	if len(labels) == 0 {
		return nil, ErrBadSize
	}

	// 2. Build bottom-up: the last label is the deepest leaf.
	node := tree.Leaf(labels[len(labels)-1])
	for i := len(labels) - 2; i >= 0; i-- {
		parent, err := tree.New(labels[i], node)
		if err != nil {
			return nil, err
		}
		node = parent
	}

	return node, nil
}

// Complete builds a complete k-ary tree: every node above the deepest
// level has exactly arity branches, and all leaves sit at the given
// depth (depth 0 yields a single leaf). Labels come from the configured
// label function applied to preorder node indices.
// Returns ErrBadArity for arity < 1 and ErrBadDepth for depth < 0.
// Complexity: O(arity^depth) nodes.
func Complete(arity, depth int, opts ...Option) (*tree.Tree[int64], error) {
	// 1. Validate shape parameters.
	if arity < 1 {
		return nil, ErrBadArity
	}
	if depth < 0 {
		return nil, ErrBadDepth
	}

	// 2. Resolve options.
	cfg := defaultConfig()
	for _, fn := range opts {
		fn(&cfg)
	}

	// 3. Recursive preorder construction with a running index.
	next := 0

	return completeNode(arity, depth, &cfg, &next)
}

// completeNode builds one node of the complete tree, consuming preorder
// indices through next.
func completeNode(arity, depth int, cfg *config, next *int) (*tree.Tree[int64], error) {
	label := cfg.labelFn(*next)
	*next++

	if depth == 0 {
		return tree.Leaf(label), nil
	}

	branches := make([]*tree.Tree[int64], arity)
	for i := 0; i < arity; i++ {
		child, err := completeNode(arity, depth-1, cfg, next)
		if err != nil {
			return nil, err
		}
		branches[i] = child
	}

	return tree.New(label, branches...)
}

// Random builds a tree with n nodes by attaching each new node to a
// uniformly random existing node — the recursive-tree process. The
// shape is fully determined by the RNG, so a fixed WithSeed locks it.
// Labels come from the configured label function applied to creation
// order (the root is index 0).
// Returns ErrBadSize for n < 1 and ErrNeedRandSource when neither
// WithSeed nor WithRand was supplied.
// Complexity: O(n).
func Random(n int, opts ...Option) (*tree.Tree[int64], error) {
	// 1. Validate size.
	if n < 1 {
		return nil, ErrBadSize
	}

	// 2. Resolve options; a stochastic builder demands an explicit RNG.
	cfg := defaultConfig()
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	// 3. Root first, then n-1 uniform attachments.
	root := tree.Leaf(cfg.labelFn(0))
	nodes := make([]*tree.Tree[int64], 1, n)
	nodes[0] = root
	for i := 1; i < n; i++ {
		child := tree.Leaf(cfg.labelFn(i))
		parent := nodes[cfg.rng.Intn(len(nodes))]
		if err := parent.AddBranch(child); err != nil {
			return nil, err
		}
		nodes = append(nodes, child)
	}

	return root, nil
}
