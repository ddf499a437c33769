package unparser

import (
	"strings"

	"github.com/devanbenz/ssg-parser-demo/ast"
)

// Render walks tr depth-first and returns the resulting
// markup. A nil tree renders as the empty string.
//
// Render takes ownership of tr: callers must not use the
// tree afterwards.
func Render(tr *ast.Tree) string {
	if tr == nil {
		return ""
	}

	var sb strings.Builder

	renderTrees(&sb, []*ast.Tree{tr})

	return sb.String()
}

func renderTrees(sb *strings.Builder, trees []*ast.Tree) {
	for _, tr := range trees {
		switch nd := tr.Node.(type) {
		case *ast.Element:
			sb.WriteByte('<')
			sb.WriteString(nd.Tag)
			sb.WriteByte('>')

			renderTrees(sb, tr.Children)

			sb.WriteString("</")
			sb.WriteString(nd.Tag)
			sb.WriteByte('>')
		case *ast.Variable:
			if nd.Bound {
				sb.WriteString(nd.Value)
			}

			renderTrees(sb, tr.Children)
		}
	}
}
