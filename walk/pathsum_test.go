package walk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbor/tree"
	"github.com/katalvlaran/arbor/walk"
)

func TestMaxPathSum_NilTree(t *testing.T) {
	sum, err := walk.MaxPathSum[int64](nil)
	assert.Zero(t, sum)
	assert.ErrorIs(t, err, walk.ErrNilTree)
}

func TestMaxPathSum_Leaf(t *testing.T) {
	sum, err := walk.MaxPathSum(tree.Leaf[int64](7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), sum, "a leaf's best path is its own label")
}

func TestMaxPathSum_PicksBestBranch(t *testing.T) {
	// Paths: 1-2-4 = 7, 1-2-5 = 8, 1-3 = 4 → best is 8.
	sum, err := walk.MaxPathSum(buildSpine(t))
	require.NoError(t, err)
	assert.Equal(t, int64(8), sum)
}

func TestMaxPathSum_NegativeLabels(t *testing.T) {
	// Max must still pick the least bad leaf: -1 + -2 = -3 beats -1 + -5.
	root, err := tree.New(int64(-1), tree.Leaf[int64](-2), tree.Leaf[int64](-5))
	require.NoError(t, err)

	sum, serr := walk.MaxPathSum(root)
	require.NoError(t, serr)
	assert.Equal(t, int64(-3), sum)
}

func TestMaxPathSum_AtLeastRootLabel(t *testing.T) {
	// With non-negative labels the sum can never undercut the root.
	n := buildSpine(t)
	sum, err := walk.MaxPathSum(n)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sum, n.Label())
}

func TestMaxPathSum_TieIsUnobservable(t *testing.T) {
	// Both branches yield 5; either choice produces the same sum.
	root, err := tree.New(int64(1), tree.Leaf[int64](5), tree.Leaf[int64](5))
	require.NoError(t, err)

	sum, serr := walk.MaxPathSum(root)
	require.NoError(t, serr)
	assert.Equal(t, int64(6), sum)
}

func TestMaxPathSum_FloatLabels(t *testing.T) {
	mid, err := tree.New(1.5, tree.Leaf(2.25))
	require.NoError(t, err)
	root, rerr := tree.New(1.0, mid, tree.Leaf(0.5))
	require.NoError(t, rerr)

	sum, serr := walk.MaxPathSum(root)
	require.NoError(t, serr)
	assert.InDelta(t, 4.75, sum, 1e-9)
}

func TestMaxPathSum_OnVisitError(t *testing.T) {
	hookErr := errors.New("halt at 5")
	sum, err := walk.MaxPathSum(buildSpine(t), walk.WithOnVisit(func(label int64) error {
		if label == 5 {
			return hookErr
		}

		return nil
	}))
	assert.Zero(t, sum)
	assert.ErrorIs(t, err, hookErr)
}

func TestMaxPathSum_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := walk.MaxPathSum(buildSpine(t), walk.WithContext[int64](ctx))
	assert.Zero(t, sum)
	assert.ErrorIs(t, err, context.Canceled)
}
