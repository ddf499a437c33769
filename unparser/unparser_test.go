package unparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanbenz/ssg-parser-demo/ast"
	"github.com/devanbenz/ssg-parser-demo/lexer"
	"github.com/devanbenz/ssg-parser-demo/unparser"
	"github.com/devanbenz/ssg-parser-demo/vars"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		values map[string]string
		want   string
	}{
		{
			name:  "empty element",
			input: "<div></div>",
			want:  "<div></div>",
		},
		{
			name:   "bound placeholder",
			input:  "<p>{{ value }}</p>",
			values: map[string]string{"value": "foobar"},
			want:   "<p>foobar</p>",
		},
		{
			name:  "unbound placeholder renders empty",
			input: "<p>{{ missing }}</p>",
			want:  "<p></p>",
		},
		{
			name:  "missing closing tag is still closed",
			input: "<div>",
			want:  "<div></div>",
		},
		{
			name:  "nesting is flattened",
			input: "<a><b><c></c></b></a>",
			want:  "<a><b></b><c></c></a>",
		},
		{
			name:   "nested placeholder follows sibling element",
			input:  "<div><p>{{ value }}</p></div>",
			values: map[string]string{"value": "foobar"},
			want:   "<div><p></p>foobar</div>",
		},
		{
			name:   "values are not escaped",
			input:  "<p>{{ value }}</p>",
			values: map[string]string{"value": "<b>&</b>"},
			want:   "<p><b>&</b></p>",
		},
		{
			name:   "adjacent variables concatenate",
			input:  "<p>{{ first }} {{ last }}</p>",
			values: map[string]string{"first": "Ada", "last": "Lovelace"},
			want:   "<p>AdaLovelace</p>",
		},
		{
			name:   "unbound root variable renders its children",
			input:  "value <p></p>",
			values: map[string]string{"value": "x"},
			want:   "<p></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := vars.New()
			for key, val := range tt.values {
				ctx.Insert(key, val)
			}

			tr := ast.Build(lexer.Tokenize(tt.input))
			require.NotNil(t, tr)

			ast.Bind(tr, ctx)

			assert.Equal(t, tt.want, unparser.Render(tr))
		})
	}
}

func TestRender_nil_tree(t *testing.T) {
	t.Parallel()

	assert.Empty(t, unparser.Render(nil))
}

func TestRender_variable_children(t *testing.T) {
	t.Parallel()

	tr := &ast.Tree{
		Node: &ast.Variable{Name: "v", Value: "before", Bound: true},
		Children: []*ast.Tree{
			{Node: &ast.Element{Tag: "i"}},
		},
	}

	assert.Equal(t, "before<i></i>", unparser.Render(tr))
}
