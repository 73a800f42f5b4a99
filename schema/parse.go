package schema

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidSchema indicates the schema source could not be decoded.
var ErrInvalidSchema = errors.New("invalid schema")

// Parse decodes JSON or YAML schema source into a schema tree.
//
// Objects decode to [yaml.MapSlice] so that key order is kept, arrays to
// []any, and scalars to their natural Go types.
func Parse(data []byte) (any, error) {
	// JSON permits tab indentation where YAML does not. A raw tab in valid
	// JSON can only be insignificant whitespace.
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		data = bytes.ReplaceAll(data, []byte{'\t'}, []byte{' '})
	}

	var tree any

	err := yaml.UnmarshalWithOptions(data, &tree, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return tree, nil
}

// FromJSONSchema converts a typed [jsonschema.Schema] into a schema tree.
func FromJSONSchema(s *jsonschema.Schema) (any, error) {
	if s == nil {
		return nil, nil
	}

	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return Parse(b)
}
