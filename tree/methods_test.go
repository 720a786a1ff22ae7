package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbor/tree"
)

// buildSpine returns Tree(1, [Tree(2, [Tree(4), Tree(5)]), Tree(3)]),
// the shared fixture used across the entity tests.
func buildSpine(t *testing.T) *tree.Tree[int64] {
	t.Helper()
	mid, err := tree.New(int64(2), tree.Leaf[int64](4), tree.Leaf[int64](5))
	require.NoError(t, err)
	root, err := tree.New(int64(1), mid, tree.Leaf[int64](3))
	require.NoError(t, err)

	return root
}

func TestSetLabel(t *testing.T) {
	n := tree.Leaf[int64](7)
	n.SetLabel(49)
	assert.Equal(t, int64(49), n.Label())
}

func TestBranch_OutOfRange(t *testing.T) {
	n := buildSpine(t)

	_, err := n.Branch(-1)
	assert.ErrorIs(t, err, tree.ErrBranchIndex)
	_, err = n.Branch(2)
	assert.ErrorIs(t, err, tree.ErrBranchIndex)

	got, err := n.Branch(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Label())
}

func TestBranches_DefensiveCopy(t *testing.T) {
	n := buildSpine(t)

	kids := n.Branches()
	require.Len(t, kids, 2)
	kids[0] = nil // clobber the copy

	again := n.Branches()
	require.NotNil(t, again[0], "tree must be unaffected by edits to the returned slice")
	assert.Equal(t, int64(2), again[0].Label())
}

func TestBranches_ElementsAreLiveNodes(t *testing.T) {
	n := buildSpine(t)

	// The copy holds the live children, so label edits are visible.
	n.Branches()[1].SetLabel(30)
	got, err := n.Branch(1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got.Label())
}

func TestAddBranch(t *testing.T) {
	n := tree.Leaf[int64](1)

	assert.ErrorIs(t, n.AddBranch(nil), tree.ErrNilBranch)
	require.NoError(t, n.AddBranch(tree.Leaf[int64](2)))
	require.NoError(t, n.AddBranch(tree.Leaf[int64](3)))

	assert.Equal(t, 2, n.Degree())
	last, err := n.Branch(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), last.Label(), "AddBranch appends at the end")
}

func TestRemoveBranch(t *testing.T) {
	n := buildSpine(t)

	assert.ErrorIs(t, n.RemoveBranch(5), tree.ErrBranchIndex)
	assert.ErrorIs(t, n.RemoveBranch(-1), tree.ErrBranchIndex)

	require.NoError(t, n.RemoveBranch(0))
	assert.Equal(t, 1, n.Degree())
	got, err := n.Branch(0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Label(), "remaining branches keep their order")
}

func TestSize(t *testing.T) {
	assert.Equal(t, 1, tree.Leaf[int64](9).Size())
	assert.Equal(t, 5, buildSpine(t).Size())
}
