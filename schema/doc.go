// Package schema turns a JSON-Schema-like document into an
// [annotation.Table].
//
// A schema tree is the generic decoded form of a schema: objects are
// [yaml.MapSlice] (or map[string]any), arrays are []any, and everything else
// is a scalar. [Parse] produces one from JSON or YAML source, and
// [FromJSONSchema] from a typed [jsonschema.Schema].
//
// [Extract] first calls [Resolve] to substitute local "$ref" pointers, then
// walks the tree:
//
//	tree, err := schema.Parse(src)
//	table := schema.Extract(tree)
//	ann, ok := table.Lookup("server.port")
//
// Only local references are supported. External references and dangling
// pointers are left in place and contribute nothing. Reference cycles are
// broken at the first pointer that repeats on a resolution chain.
//
// [jsonschema.Schema]: https://pkg.go.dev/github.com/google/jsonschema-go/jsonschema#Schema
// [yaml.MapSlice]: https://pkg.go.dev/github.com/goccy/go-yaml#MapSlice
package schema
