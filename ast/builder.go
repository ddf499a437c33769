package ast

import "github.com/devanbenz/ssg-parser-demo/lexer"

// Build turns tokens into a tree. It returns nil when no
// token establishes a root.
func Build(tokens []lexer.Token) *Tree {
	var root *Tree

	for _, tk := range tokens {
		var nd Node

		switch tk.Kind {
		case lexer.OpeningTag:
			nd = &Element{Tag: tk.Text}
		case lexer.Literal:
			nd = &Variable{Name: tk.Text}
		default:
			// Closing tags and braces carry no structure.
			continue
		}

		sub := newTree(nd)

		if root == nil {
			root = sub
			continue
		}

		root.Children = append(root.Children, sub)
	}

	return root
}
