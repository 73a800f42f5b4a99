// Package annotator adds schema documentation to TOML and YAML documents as
// comments.
//
// Titles, descriptions, and optionally default values are taken from a JSON
// Schema style tree and written as comment blocks above the tables and keys
// they describe. Nothing else in the document changes.
//
//	tree, err := schema.Parse(schemaSrc)
//	if err != nil {
//		return err
//	}
//
//	out, err := annotator.Annotate(tree, doc, annotator.FormatTOML, annotation.DefaultConfig())
//
// Each format has its own engine, in packages [toml] and [yaml]; [New]
// returns the one for a [Format]. To annotate many documents with one schema,
// extract the table once with [schema.Extract] and use [AnnotateWithTable].
//
// Errors from the engines wrap [ErrParse] when the document is not valid in
// its format. [ErrIO] is reserved for callers that read and write the
// documents.
//
// [Config] binds all of this to command line flags.
//
// [toml]: https://pkg.go.dev/go.jacobcolvin.com/schemacomment/annotator/toml
// [yaml]: https://pkg.go.dev/go.jacobcolvin.com/schemacomment/annotator/yaml
package annotator
