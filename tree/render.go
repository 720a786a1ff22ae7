package tree

import (
	"fmt"
	"strings"
)

// indentStep is the prefix each ancestor adds to every line of a
// branch's indented rendering.
const indentStep = "  "

// Repr renders the structural form of the subtree:
//
//	Tree(4)                                  // leaf
//	Tree(1, [Tree(2, [Tree(4), Tree(5)]), Tree(3)])
//
// The form is round-trippable by construction: feeding the label and the
// branch list back through New reproduces an Equal tree. Leaves render as
// just their label with no branch list.
// Complexity: O(node count).
func (t *Tree[T]) Repr() string {
	if len(t.branches) == 0 {
		return fmt.Sprintf("Tree(%v)", t.label)
	}

	reprs := make([]string, len(t.branches))
	for i, b := range t.branches {
		reprs[i] = b.Repr()
	}

	return fmt.Sprintf("Tree(%v, [%s])", t.label, strings.Join(reprs, ", "))
}

// String renders the human-readable indented display: the label on its
// own line, then each branch's rendering with every line prefixed by two
// additional spaces, branches in order, lines joined by newlines.
// Complexity: O(node count × depth) characters.
func (t *Tree[T]) String() string {
	return strings.Join(t.Indented(), "\n")
}

// Indented returns the ordered lines of the indented display as a slice,
// for reuse by ancestors: each ancestor prefixes every line of each
// branch's Indented output with two spaces, then prepends its own label
// line.
// Complexity: O(node count × depth) characters.
func (t *Tree[T]) Indented() []string {
	lines := []string{fmt.Sprintf("%v", t.label)}
	for _, b := range t.branches {
		for _, line := range b.Indented() {
			lines = append(lines, indentStep+line)
		}
	}

	return lines
}
