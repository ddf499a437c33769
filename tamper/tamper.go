package tamper

import (
	"io"

	"github.com/devanbenz/ssg-parser-demo/ast"
	"github.com/devanbenz/ssg-parser-demo/lexer"
	"github.com/devanbenz/ssg-parser-demo/unparser"
	"github.com/devanbenz/ssg-parser-demo/vars"
)

// Template is a compiled template waiting to be rendered.
type Template struct {
	tree *ast.Tree
}

// New tokenizes input and builds its tree.
func New(input string) *Template {
	return &Template{tree: ast.Build(lexer.Tokenize(input))}
}

// Empty reports whether the template has nothing left to
// render, either because the input established no root or
// because it was already rendered.
func (tp *Template) Empty() bool {
	return tp.tree == nil
}

// Dump writes the current tree to w. It writes nothing
// for an empty template.
func (tp *Template) Dump(w io.Writer) error {
	if tp.tree == nil {
		return nil
	}

	return tp.tree.Dump(w)
}

// Render binds the template against ctx and returns the
// HTML. ok is false when there is no tree to render.
// The tree is consumed: after the first call the template
// is empty.
func (tp *Template) Render(ctx *vars.Context) (string, bool) {
	tree := tp.tree
	if tree == nil {
		return "", false
	}

	tp.tree = nil

	if ctx == nil {
		ctx = vars.New()
	}

	ast.Bind(tree, ctx)

	return unparser.Render(tree), true
}

// Render compiles and renders input in one step.
func Render(input string, ctx *vars.Context) (string, bool) {
	return New(input).Render(ctx)
}
