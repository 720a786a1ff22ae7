package walk_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arbor/tree"
	"github.com/katalvlaran/arbor/walk"
)

// buildExampleTree returns
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
//
// the tree shared by the runnable examples.
func buildExampleTree() *tree.Tree[int64] {
	mid, _ := tree.New(int64(2), tree.Leaf[int64](4), tree.Leaf[int64](5))
	root, _ := tree.New(int64(1), mid, tree.Leaf[int64](3))

	return root
}

// ExamplePreorder lists every label depth-first, root before branches.
// Complexity: O(node count).
func ExamplePreorder() {
	labels, _ := walk.Preorder(buildExampleTree())
	fmt.Println(labels)
	// Output:
	// [1 2 4 5 3]
}

// ExampleFindPath walks to the preorder-first node labeled 5 and prints
// the labels along the way, then shows the explicit absent signal.
func ExampleFindPath() {
	t := buildExampleTree()

	path, _ := walk.FindPath(t, int64(5))
	fmt.Println(path)

	_, err := walk.FindPath(t, int64(9))
	fmt.Println(errors.Is(err, walk.ErrLabelNotFound))
	// Output:
	// [1 2 5]
	// true
}

// ExampleMaxPathSum picks the best root-to-leaf sum: 1+2+5 beats both
// 1+2+4 and 1+3.
func ExampleMaxPathSum() {
	sum, _ := walk.MaxPathSum(buildExampleTree())
	fmt.Println(sum)
	// Output:
	// 8
}
