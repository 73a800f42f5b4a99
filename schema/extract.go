package schema

import (
	"go.jacobcolvin.com/schemacomment/annotation"
)

// Keywords whose members are walked at the parent's path.
var combinators = []string{"oneOf", "allOf", "anyOf"}

// Extract resolves local references in tree and walks it depth-first,
// returning one annotation per path that carries a title, description, or
// default.
//
// Children under "properties" extend the path with their name. "items",
// schema-valued "additionalProperties", and the members of "oneOf", "allOf",
// and "anyOf" annotate the same path as their parent. When two branches
// document the same path, the one walked last wins.
func Extract(tree any) *annotation.Table {
	w := &walker{table: annotation.NewTable()}
	w.walk(Resolve(tree), nil)

	return w.table
}

type walker struct {
	table *annotation.Table
}

func (w *walker) walk(node any, path annotation.Path) {
	if !isObject(node) {
		return
	}

	ann := annotation.Annotation{
		Path:        path,
		Title:       stringField(node, "title"),
		Description: stringField(node, "description"),
	}

	if def, ok := field(node, "default"); ok {
		ann.Default = RenderDefault(def)
	}

	w.table.Insert(ann)

	if props, ok := field(node, "properties"); ok {
		for _, item := range entries(props) {
			w.walk(item.Value, path.Child(keyString(item.Key)))
		}
	}

	if items, ok := field(node, "items"); ok {
		w.walk(items, path)
	}

	if additional, ok := field(node, "additionalProperties"); ok && isObject(additional) {
		w.walk(additional, path)
	}

	for _, kw := range combinators {
		branches, ok := field(node, kw)
		if !ok {
			continue
		}

		list, _ := branches.([]any)
		for _, branch := range list {
			w.walk(branch, path)
		}
	}
}
