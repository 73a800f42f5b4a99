package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/schemacomment/annotation"
	"go.jacobcolvin.com/schemacomment/schema"
)

type wantAnnotation struct {
	title       string
	description string
	def         string
}

func extract(t *testing.T, src string) *annotation.Table {
	t.Helper()

	tree, err := schema.Parse([]byte(src))
	require.NoError(t, err)

	return schema.Extract(tree)
}

func assertTable(t *testing.T, want map[string]wantAnnotation, got *annotation.Table) {
	t.Helper()

	gotMap := make(map[string]wantAnnotation, got.Len())
	for a := range got.All() {
		gotMap[a.Path.String()] = wantAnnotation{
			title:       a.Title,
			description: a.Description,
			def:         a.Default,
		}
	}

	assert.Equal(t, want, gotMap)
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  map[string]wantAnnotation
		input string
	}{
		"simple": {
			input: `{
				"properties": {
					"name": {"title": "Name", "description": "User's full name"},
					"age": {"title": "Age"}
				}
			}`,
			want: map[string]wantAnnotation{
				"name": {title: "Name", description: "User's full name"},
				"age":  {title: "Age"},
			},
		},
		"path fidelity": {
			input: `{"properties":{"server":{"title":"Server","properties":{"port":{"title":"Port"}}}}}`,
			want: map[string]wantAnnotation{
				"server":      {title: "Server"},
				"server.port": {title: "Port"},
			},
		},
		"root annotation": {
			input: `{
				"title": "Config",
				"description": "Application configuration",
				"properties": {"debug": {"title": "Debug Mode"}}
			}`,
			want: map[string]wantAnnotation{
				"":      {title: "Config", description: "Application configuration"},
				"debug": {title: "Debug Mode"},
			},
		},
		"no annotations": {
			input: `{"properties": {"name": {"type": "string"}, "age": {"type": "number"}}}`,
			want:  map[string]wantAnnotation{},
		},
		"array items inherit the parent path": {
			input: `{
				"properties": {
					"users": {
						"title": "Users",
						"items": {"properties": {"name": {"title": "User Name"}}}
					}
				}
			}`,
			want: map[string]wantAnnotation{
				"users":      {title: "Users"},
				"users.name": {title: "User Name"},
			},
		},
		"additional properties schema": {
			input: `{
				"properties": {
					"labels": {
						"title": "Labels",
						"additionalProperties": {"properties": {"color": {"title": "Color"}}}
					},
					"strict": {"additionalProperties": false}
				}
			}`,
			want: map[string]wantAnnotation{
				"labels":       {title: "Labels"},
				"labels.color": {title: "Color"},
			},
		},
		"combinator branches share the parent path": {
			input: `{
				"properties": {
					"auth": {
						"oneOf": [
							{"properties": {"token": {"title": "Token"}}},
							{"properties": {"user": {"title": "User"}}}
						],
						"allOf": [{"properties": {"realm": {"title": "Realm"}}}],
						"anyOf": [{"description": "Authentication settings"}]
					}
				}
			}`,
			want: map[string]wantAnnotation{
				"auth":       {description: "Authentication settings"},
				"auth.token": {title: "Token"},
				"auth.user":  {title: "User"},
				"auth.realm": {title: "Realm"},
			},
		},
		"non-string title is ignored": {
			input: `{"properties": {"odd": {"title": 42, "description": "Kept"}}}`,
			want: map[string]wantAnnotation{
				"odd": {description: "Kept"},
			},
		},
		"defaults": {
			input: `{
				"properties": {
					"port": {"title": "Port", "default": 8080},
					"host": {"default": "localhost"},
					"ratio": {"default": 0.5},
					"debug": {"default": false},
					"proxy": {"default": null},
					"tags": {"default": ["a", 1, true]},
					"limits": {"default": {"cpu": "1", "memory": 512}}
				}
			}`,
			want: map[string]wantAnnotation{
				"port":   {title: "Port", def: "8080"},
				"host":   {def: `"localhost"`},
				"ratio":  {def: "0.5"},
				"debug":  {def: "false"},
				"proxy":  {def: "null"},
				"tags":   {def: `["a", 1, true]`},
				"limits": {def: `{cpu: "1", memory: 512}`},
			},
		},
		"yaml source": {
			input: "properties:\n  replicas:\n    title: Replicas\n    default: 3\n",
			want: map[string]wantAnnotation{
				"replicas": {title: "Replicas", def: "3"},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assertTable(t, tc.want, extract(t, tc.input))
		})
	}
}

func TestExtractDottedPropertyNames(t *testing.T) {
	t.Parallel()

	got := extract(t, `{
		"properties": {
			"a.b": {"title": "Literal"},
			"a": {"properties": {"b": {"title": "Nested"}}}
		}
	}`)

	assert.Equal(t, 2, got.Len())

	literal, ok := got.Get(annotation.Path{"a.b"})
	require.True(t, ok)
	assert.Equal(t, "Literal", literal.Title)

	nested, ok := got.Get(annotation.Path{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, "Nested", nested.Title)
}

func TestExtractRefs(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  map[string]wantAnnotation
		input string
	}{
		"ref expansion": {
			input: `{
				"$defs": {"Port": {"title": "Port"}},
				"properties": {
					"http_port": {"$ref": "#/$defs/Port"},
					"https_port": {"$ref": "#/$defs/Port"}
				}
			}`,
			want: map[string]wantAnnotation{
				"http_port":  {title: "Port"},
				"https_port": {title: "Port"},
			},
		},
		"nested definitions": {
			input: `{
				"$defs": {
					"Address": {
						"title": "Address",
						"description": "A physical address",
						"properties": {
							"city": {"title": "City"},
							"country": {"$ref": "#/$defs/Country"}
						}
					},
					"Country": {"title": "Country"}
				},
				"properties": {
					"home": {"$ref": "#/$defs/Address"},
					"work": {"$ref": "#/$defs/Address"}
				}
			}`,
			want: map[string]wantAnnotation{
				"home":         {title: "Address", description: "A physical address"},
				"home.city":    {title: "City"},
				"home.country": {title: "Country"},
				"work":         {title: "Address", description: "A physical address"},
				"work.city":    {title: "City"},
				"work.country": {title: "Country"},
			},
		},
		"sibling keys override the definition": {
			input: `{
				"definitions": {"Port": {"title": "Port", "description": "A network port"}},
				"properties": {
					"admin_port": {"$ref": "#/definitions/Port", "description": "Admin listener port"}
				}
			}`,
			want: map[string]wantAnnotation{
				"admin_port": {title: "Port", description: "Admin listener port"},
			},
		},
		"external and dangling references contribute nothing": {
			input: `{
				"properties": {
					"external": {"$ref": "http://example.com/x"},
					"missing": {"$ref": "#/$defs/DoesNotExist"}
				}
			}`,
			want: map[string]wantAnnotation{},
		},
		"escaped pointer segments": {
			input: `{
				"$defs": {"a/b": {"title": "Slash"}, "c~d": {"title": "Tilde"}, "e f": {"title": "Space"}},
				"properties": {
					"slash": {"$ref": "#/$defs/a~1b"},
					"tilde": {"$ref": "#/$defs/c~0d"},
					"space": {"$ref": "#/$defs/e%20f"}
				}
			}`,
			want: map[string]wantAnnotation{
				"slash": {title: "Slash"},
				"tilde": {title: "Tilde"},
				"space": {title: "Space"},
			},
		},
		"array index pointer": {
			input: `{
				"oneOf": [{"title": "First"}],
				"properties": {"pick": {"$ref": "#/oneOf/0"}}
			}`,
			want: map[string]wantAnnotation{
				"":     {title: "First"},
				"pick": {title: "First"},
			},
		},
		"cycle is broken": {
			input: `{
				"$defs": {
					"Node": {
						"title": "Node",
						"properties": {"next": {"$ref": "#/$defs/Node"}}
					}
				},
				"properties": {"head": {"$ref": "#/$defs/Node"}}
			}`,
			want: map[string]wantAnnotation{
				"head": {title: "Node"},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assertTable(t, tc.want, extract(t, tc.input))
		})
	}
}

func TestExtractPlainMaps(t *testing.T) {
	t.Parallel()

	tree := map[string]any{
		"$defs": map[string]any{
			"Port": map[string]any{"title": "Port"},
		},
		"properties": map[string]any{
			"port": map[string]any{"$ref": "#/$defs/Port"},
			"host": map[string]any{"title": "Host", "default": "localhost"},
		},
	}

	assertTable(t, map[string]wantAnnotation{
		"port": {title: "Port"},
		"host": {title: "Host", def: `"localhost"`},
	}, schema.Extract(tree))
}

func TestFromJSONSchema(t *testing.T) {
	t.Parallel()

	s := &jsonschema.Schema{
		Title: "Config",
		Properties: map[string]*jsonschema.Schema{
			"port": {
				Title:       "Port",
				Description: "The port to listen on",
				Default:     json.RawMessage(`8080`),
			},
		},
	}

	tree, err := schema.FromJSONSchema(s)
	require.NoError(t, err)

	assertTable(t, map[string]wantAnnotation{
		"":     {title: "Config"},
		"port": {title: "Port", description: "The port to listen on", def: "8080"},
	}, schema.Extract(tree))
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := schema.Parse([]byte("{\"properties\": ["))
	require.ErrorIs(t, err, schema.ErrInvalidSchema)
}
