package checker

import (
	"strings"

	"github.com/mernst/require-javadoc/internal/syntax"
)

// HasDocumentation reports whether the node carries a documentation
// comment. Besides the directly attached comment it recovers orphaned
// ones: a doc comment separated from its declaration by ordinary comments
// is attached to nothing and strands among the parent's children, as in
//
//	/** doc */
//	// text 1
//	// text 2
//	void m() { ... }
//
// where only "// text 2" is attached to the method. Evaluated fresh per
// node; orphan boundaries depend on the node's own siblings.
func HasDocumentation(n *syntax.Node) bool {
	attached := n.AttachedComment()
	if attached != nil && attached.IsDocComment() {
		return true
	}
	for _, orphan := range orphanCommentsBefore(n) {
		if orphan.IsDocComment() {
			return true
		}
	}
	// A malformed attached comment that still opens with the doc delimiter
	// counts as documentation.
	if attached != nil && strings.HasPrefix(attached.Text(), "/**") {
		return true
	}
	return false
}

// orphanCommentsBefore returns the run of comment siblings between the
// node and its nearest preceding non-comment sibling, in source order.
func orphanCommentsBefore(n *syntax.Node) []*syntax.Node {
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.NamedChildren()
	idx := -1
	for i, s := range siblings {
		if s == n {
			idx = i
			break
		}
	}
	if idx == -1 {
		panic("node is not a child of its parent")
	}
	start := idx
	for start > 0 && siblings[start-1].IsComment() {
		start--
	}
	return siblings[start:idx]
}
