package ast

// Lookuper resolves a variable name to its value.
type Lookuper interface {
	Lookup(key string) (string, bool)
}

// Bind resolves every Variable below the root of tr
// against ctx, in depth-first pre-order. The root node
// itself is not visited. Variables whose name ctx does not
// know are left unbound.
func Bind(tr *Tree, ctx Lookuper) {
	if tr == nil {
		return
	}

	bindChildren(tr.Children, ctx)
}

func bindChildren(children []*Tree, ctx Lookuper) {
	for _, child := range children {
		if va, ok := child.Node.(*Variable); ok {
			if val, found := ctx.Lookup(va.Name); found {
				va.bind(val)
			}
		}

		bindChildren(child.Children, ctx)
	}
}
