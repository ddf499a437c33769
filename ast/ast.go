package ast

import (
	"fmt"
	"io"
	"strings"
)

// Node is one template node: an *Element or a *Variable.
type Node interface {
	node()
}

// Element is an HTML element rendered as <Tag>...</Tag>.
type Element struct {
	Tag string
}

func (*Element) node() {}

// Variable is a placeholder. Value is meaningful only
// when Bound is true.
type Variable struct {
	Name  string
	Value string
	Bound bool
}

func (*Variable) node() {}

// bind records value. Value and Bound always change
// together.
func (va *Variable) bind(value string) {
	va.Value = value
	va.Bound = true
}

// Tree is a node and the subtrees it owns.
type Tree struct {
	Node     Node
	Children []*Tree
}

func newTree(nd Node) *Tree {
	return &Tree{Node: nd, Children: []*Tree{}}
}

// Dump writes the tree to w, one node per line, indented
// with one tab per level.
func (tr *Tree) Dump(w io.Writer) error {
	const errCtx = "dumping tree"

	if err := tr.dump(w, 0); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func (tr *Tree) dump(w io.Writer, depth int) error {
	if tr == nil {
		return nil
	}

	indent := strings.Repeat("\t", depth)

	var line string

	switch nd := tr.Node.(type) {
	case *Element:
		line = fmt.Sprintf("%sElement %s", indent, nd.Tag)
	case *Variable:
		if nd.Bound {
			line = fmt.Sprintf(
				"%sVariable %s = %q", indent, nd.Name, nd.Value,
			)
		} else {
			line = fmt.Sprintf("%sVariable %s (unbound)", indent, nd.Name)
		}
	}

	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}

	for _, child := range tr.Children {
		if err := child.dump(w, depth+1); err != nil {
			return err
		}
	}

	return nil
}
