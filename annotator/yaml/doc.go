// Package yaml places annotation comments into YAML documents.
//
// No format-preserving YAML tree is used. The document is validated with
// [github.com/goccy/go-yaml/parser] and then read as plain lines: a stack of
// open mappings, keyed by indentation, gives every "key:" line its path.
// Comment blocks are inserted as whole lines, so the rest of the document is
// never rewritten.
//
// A key counts as already commented when the line directly above it is a
// comment at the same indentation. With [annotation.Prepend] or
// [annotation.Append] the new block goes directly above the key, which puts
// it after such a comment in both cases. [annotation.Replace] removes every
// contiguous comment line above the key first.
//
// Lines that start a sequence item are never targets. Mapping keys below an
// item take the path of the enclosing mapping, so "value" in
//
//	list:
//	  - name: x
//	    value: y
//
// is list.value, the path a schema's "items" properties document. Flow
// collections, block scalar bodies, and multi-line quoted scalars are skipped
// whole.
package yaml
