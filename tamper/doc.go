// Package tamper compiles HTML-like templates with {{ name }}
// placeholders into HTML.
//
// New lexes the input and builds its tree up front. Render binds the
// tree against a vars.Context and serializes it. A Template renders
// once: the tree is handed to the renderer and later calls report no
// output.
//
//	tpl := tamper.New("<p>{{ value }}</p>")
//	ctx := vars.New()
//	ctx.Insert("value", "foobar")
//	html, ok := tpl.Render(ctx) // "<p>foobar</p>", true
package tamper
