package annotation_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/schemacomment/annotation"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  annotation.Path
	}{
		"root":   {input: "", want: nil},
		"single": {input: "port", want: annotation.Path{"port"}},
		"nested": {input: "server.port", want: annotation.Path{"server", "port"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := annotation.ParsePath(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.input, got.String())
		})
	}
}

func TestPathChild(t *testing.T) {
	t.Parallel()

	parent := make(annotation.Path, 1, 4)
	parent[0] = "server"

	a := parent.Child("host")
	b := parent.Child("port")

	assert.Equal(t, annotation.Path{"server", "host"}, a)
	assert.Equal(t, annotation.Path{"server", "port"}, b)
	assert.Equal(t, annotation.Path{"server"}, parent)
}

func TestTable(t *testing.T) {
	t.Parallel()

	table := annotation.NewTable(
		annotation.Annotation{Path: annotation.Path{"a"}, Title: "A"},
		annotation.Annotation{Path: annotation.Path{"b"}, Title: "B"},
	)

	assert.Equal(t, 2, table.Len())

	a, ok := table.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "A", a.Title)

	b, ok := table.Get(annotation.Path{"b"})
	require.True(t, ok)
	assert.Equal(t, "B", b.Title)

	_, ok = table.Lookup("c")
	assert.False(t, ok)
}

func TestTableInsert(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input     []annotation.Annotation
		wantPaths []string
		wantTitle string
	}{
		"empty annotation is dropped": {
			input:     []annotation.Annotation{{Path: annotation.Path{"empty"}}},
			wantPaths: nil,
		},
		"default alone is kept": {
			input: []annotation.Annotation{
				{Path: annotation.Path{"port"}, Default: "8080"},
			},
			wantPaths: []string{"port"},
		},
		"last writer wins": {
			input: []annotation.Annotation{
				{Path: annotation.Path{"port"}, Title: "First"},
				{Path: annotation.Path{"port"}, Title: "Second"},
			},
			wantPaths: []string{"port"},
			wantTitle: "Second",
		},
		"root path": {
			input: []annotation.Annotation{
				{Title: "Config"},
			},
			wantPaths: []string{""},
			wantTitle: "Config",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			table := annotation.NewTable(tc.input...)

			var paths []string
			for a := range table.All() {
				paths = append(paths, a.Path.String())
			}

			assert.Equal(t, tc.wantPaths, paths)

			if tc.wantTitle != "" {
				got, ok := table.Get(tc.input[0].Path)
				require.True(t, ok)
				assert.Equal(t, tc.wantTitle, got.Title)
			}
		})
	}
}

func TestTableDottedSegmentsAreDistinct(t *testing.T) {
	t.Parallel()

	table := annotation.NewTable(
		annotation.Annotation{Path: annotation.Path{"a.b"}, Title: "Literal"},
		annotation.Annotation{Path: annotation.Path{"a", "b"}, Title: "Nested"},
	)

	assert.Equal(t, 2, table.Len())

	literal, ok := table.Get(annotation.Path{"a.b"})
	require.True(t, ok)
	assert.Equal(t, "Literal", literal.Title)

	nested, ok := table.Get(annotation.Path{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, "Nested", nested.Title)
}

func TestTableInsertCopiesPath(t *testing.T) {
	t.Parallel()

	path := annotation.Path{"server", "port"}
	table := annotation.NewTable(annotation.Annotation{Path: path, Title: "Port"})

	path[1] = "host"

	_, ok := table.Lookup("server.port")
	assert.True(t, ok)
}

func TestNilTable(t *testing.T) {
	t.Parallel()

	var table *annotation.Table

	_, ok := table.Lookup("anything")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, slices.Collect(table.All()))
}

func TestTableAllOrder(t *testing.T) {
	t.Parallel()

	table := annotation.NewTable(
		annotation.Annotation{Path: annotation.ParsePath("server.port"), Title: "Port"},
		annotation.Annotation{Path: annotation.ParsePath("database"), Title: "Database"},
		annotation.Annotation{Path: annotation.ParsePath("server"), Title: "Server"},
	)

	var got []string
	for a := range table.All() {
		got = append(got, a.Path.String())
	}

	assert.Equal(t, []string{"database", "server", "server.port"}, got)
}
