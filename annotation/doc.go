// Package annotation holds the documentation records that schema comments are
// built from, and renders them as comment lines.
//
// An [Annotation] carries the title, description, and rendered default value
// found at one [Path] of a schema. A [Table] indexes annotations by path and is
// the single input the placement engines in
// [go.jacobcolvin.com/schemacomment/annotator/toml] and
// [go.jacobcolvin.com/schemacomment/annotator/yaml] consume.
//
// A [Formatter] turns an annotation into comment lines under a [Config]:
//
//	f := annotation.NewFormatter(annotation.DefaultConfig())
//	lines := f.Lines(ann, "  ")
//	// ["  # Port", "  # The port to listen on"]
//
// Descriptions are word-wrapped so that a line, including its indentation and
// the "# " marker, does not exceed [Config.MaxLineWidth] unless a single word
// is longer than the available room.
package annotation
