package syntax

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Tree is a parsed Java source file.
type Tree struct {
	root       *Node
	src        []byte
	firstError *Position
}

// Root returns the compilation unit node.
func (t *Tree) Root() *Node { return t.root }

// FirstError returns the position of the first syntax error in the file,
// or nil if the file parsed cleanly. The grammar is error-tolerant, so a
// file "fails to parse" exactly when the tree contains an error node.
func (t *Tree) FirstError() *Position { return t.firstError }

// Parse parses Java source. The returned tree holds its own copy of every
// position and keeps only the src slice; nothing references parser memory
// once Parse returns.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tsTree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	defer tsTree.Close()

	t := &Tree{src: src}
	cursor := sitter.NewTreeCursor(tsTree.RootNode())
	defer cursor.Close()
	t.root = t.build(cursor, nil)
	if t.firstError == nil && tsTree.RootNode().HasError() {
		// A missing token with no ERROR node still poisons the tree.
		p := t.root.start
		t.firstError = &p
	}
	return t, nil
}

func (t *Tree) build(cursor *sitter.TreeCursor, parent *Node) *Node {
	ts := cursor.CurrentNode()
	n := &Node{
		kind:      ts.Type(),
		field:     cursor.CurrentFieldName(),
		named:     ts.IsNamed(),
		start:     Position{Line: int(ts.StartPoint().Row) + 1, Column: int(ts.StartPoint().Column) + 1},
		end:       Position{Line: int(ts.EndPoint().Row) + 1, Column: int(ts.EndPoint().Column) + 1},
		startByte: ts.StartByte(),
		endByte:   ts.EndByte(),
		parent:    parent,
		src:       t.src,
	}
	if t.firstError == nil && (n.kind == "ERROR" || ts.IsMissing()) {
		p := n.start
		t.firstError = &p
	}
	if cursor.GoToFirstChild() {
		for {
			child := t.build(cursor, n)
			n.children = append(n.children, child)
			if child.named {
				n.namedChildren = append(n.namedChildren, child)
			}
			if !cursor.GoToNextSibling() {
				break
			}
		}
		cursor.GoToParent()
	}
	return n
}
