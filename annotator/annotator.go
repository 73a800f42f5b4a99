package annotator

import (
	"errors"
	"fmt"

	"go.jacobcolvin.com/schemacomment/annotation"
	"go.jacobcolvin.com/schemacomment/annotator/toml"
	"go.jacobcolvin.com/schemacomment/annotator/yaml"
	"go.jacobcolvin.com/schemacomment/schema"
)

// Sentinel errors returned by the annotator and its CLI configuration.
var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrInvalidOption = errors.New("invalid option")

	// ErrParse is [annotation.ErrParse].
	ErrParse = annotation.ErrParse
	// ErrIO is [annotation.ErrIO].
	ErrIO = annotation.ErrIO
)

// Annotator places comments for an annotation table into documents of one
// format. Implementations are safe for concurrent use, and a table may be
// shared by concurrent calls.
type Annotator interface {
	Annotate(content string, anns *annotation.Table) (string, error)
}

// New returns the [Annotator] for format.
func New(format Format, cfg annotation.Config) (Annotator, error) {
	switch format {
	case FormatTOML:
		return toml.New(cfg), nil
	case FormatYAML:
		return yaml.New(cfg), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Annotate extracts annotations from the schema tree and places them as
// comments into target, a document in the given format.
//
// The tree is usually produced by [schema.Parse] or [schema.FromJSONSchema].
func Annotate(tree any, target string, format Format, cfg annotation.Config) (string, error) {
	return AnnotateWithTable(schema.Extract(tree), target, format, cfg)
}

// AnnotateWithTable is [Annotate] for an already extracted table, so that one
// table can serve many documents.
func AnnotateWithTable(anns *annotation.Table, target string, format Format, cfg annotation.Config) (string, error) {
	a, err := New(format, cfg)
	if err != nil {
		return "", err
	}

	return a.Annotate(target, anns)
}
