package syntax

import "strings"

// Position is a 1-based line and column location in a source file.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Node is a single node of a parsed syntax tree. The tree is fully
// detached from the parser: navigation, positions and text extraction
// work on plain Go values.
type Node struct {
	kind          string
	field         string
	named         bool
	start         Position
	end           Position
	startByte     uint32
	endByte       uint32
	parent        *Node
	children      []*Node
	namedChildren []*Node
	src           []byte
}

// Kind returns the grammar node type, e.g. "class_declaration".
func (n *Node) Kind() string { return n.kind }

// FieldName returns the grammar field this node occupies in its parent
// ("name", "body", ...), or "" if it is positional.
func (n *Node) FieldName() string { return n.field }

// IsNamed reports whether the node is a named grammar node rather than an
// anonymous token such as "{" or ",".
func (n *Node) IsNamed() bool { return n.named }

// Start returns the node's starting position.
func (n *Node) Start() Position { return n.start }

// End returns the position just past the node.
func (n *Node) End() Position { return n.end }

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns all children in source order, anonymous tokens included.
func (n *Node) Children() []*Node { return n.children }

// NamedChildren returns the named children in source order. Comments and
// declarations are named; punctuation is not.
func (n *Node) NamedChildren() []*Node { return n.namedChildren }

// ChildByField returns the first child occupying the given grammar field,
// or nil.
func (n *Node) ChildByField(name string) *Node {
	for _, c := range n.children {
		if c.field == name {
			return c
		}
	}
	return nil
}

// Text returns the source text covered by the node.
func (n *Node) Text() string {
	return string(n.src[n.startByte:n.endByte])
}

// PrevNamedSibling returns the named sibling immediately before this node,
// or nil if there is none or the node is the root.
func (n *Node) PrevNamedSibling() *Node {
	if n.parent == nil {
		return nil
	}
	sibs := n.parent.namedChildren
	for i, s := range sibs {
		if s == n {
			if i == 0 {
				return nil
			}
			return sibs[i-1]
		}
	}
	return nil
}

// Comment node kinds. The Java grammar bundled with the parser produces
// "comment" for both forms; newer revisions split the two.
func isCommentKind(kind string) bool {
	switch kind {
	case "comment", "line_comment", "block_comment":
		return true
	}
	return false
}

// IsComment reports whether the node is a comment of any form.
func (n *Node) IsComment() bool { return isCommentKind(n.kind) }

// IsDocComment reports whether the node is a documentation comment: a
// block comment beginning with "/**". The empty comment "/**/" does not
// qualify.
func (n *Node) IsDocComment() bool {
	if !n.IsComment() {
		return false
	}
	t := n.Text()
	return strings.HasPrefix(t, "/**") && t != "/**/"
}

// AttachedComment returns the comment directly attached to the node: the
// immediately preceding named sibling, when that sibling is a comment.
// Comments further back belong to earlier siblings or are orphaned.
func (n *Node) AttachedComment() *Node {
	if prev := n.PrevNamedSibling(); prev != nil && prev.IsComment() {
		return prev
	}
	return nil
}
