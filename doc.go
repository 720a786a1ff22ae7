// Package arbor is your in-memory playground for building, inspecting,
// and reshaping rooted ordered labeled trees.
//
// 🌳 What is arbor?
//
//	A small, focused library that brings together:
//		• Core primitives: typed tree construction, branch access & mutation
//		• Renderings: round-trippable structural form + indented display
//		• Traversals: preorder listing, first-match path lookup
//		• Path analytics: maximum root-to-leaf label sum
//		• Reshaping: branch-limit pruning, in-place label transforms
//
// ✨ Why choose arbor?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Typed labels – generic over integer and float label types
//   - Pure Go – no cgo, no runtime deps beyond the test stack
//   - Extensible – visit hooks and cancellation on every traversal
//
// Under the hood, everything is organized under four subpackages:
//
//	tree/    — the Tree entity: construction, branches, renderings, clone
//	walk/    — read-only recursive algorithms: Preorder, FindPath, MaxPathSum
//	mutate/  — in-place transforms: Prune, SquareLabels, MapLabels
//	builder/ — deterministic tree generators for tests, benchmarks & demos
//
// Quick ASCII example:
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
//
//	represents Tree(1, [Tree(2, [Tree(4), Tree(5)]), Tree(3)]);
//	its preorder is [1 2 4 5 3] and its best root-to-leaf sum is 1+2+5 = 8.
//
// Trees are strict: every node owns its ordered branch slice, no sharing,
// no cycles. Mutating helpers assume a single logical owner at mutation
// time; concurrent mutation is out of scope.
//
//	go get github.com/katalvlaran/arbor
package arbor
