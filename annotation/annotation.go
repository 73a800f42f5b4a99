package annotation

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors shared by the placement engines.
var (
	// ErrParse indicates the target document does not conform to the grammar
	// of its declared format.
	ErrParse = errors.New("parse target")
	// ErrIO indicates a read or write failure. The engines never return it;
	// it is reserved for callers that perform I/O around them.
	ErrIO = errors.New("i/o")
)

// Path locates a value inside a schema and its target document as an ordered
// list of property names. The root is the empty path.
//
// Segments are never joined for lookups, so a property literally named "a.b"
// is distinct from the nested path a -> b.
type Path []string

// ParsePath splits a dot-separated path. The empty string is the root.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}

	return strings.Split(s, ".")
}

// Child returns a new path with name appended. The receiver is not modified.
func (p Path) Child(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, name)
}

// String returns the dot-joined form of the path, for display.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// key encodes the path unambiguously by length-prefixing every segment.
func (p Path) key() string {
	var sb strings.Builder
	for _, seg := range p {
		sb.WriteString(strconv.Itoa(len(seg)))
		sb.WriteByte(':')
		sb.WriteString(seg)
	}

	return sb.String()
}

// Annotation is the documentation attached to one schema path. Empty strings
// mean the field is absent.
type Annotation struct {
	Title       string
	Description string
	// Default is the rendered display form of the schema's default value.
	Default string
	Path    Path
}

// IsEmpty reports whether the annotation carries no documentation at all.
func (a Annotation) IsEmpty() bool {
	return a.Title == "" && a.Description == "" && a.Default == ""
}

// Table maps paths to annotations. The zero value and a nil *Table are both
// usable as an empty table.
//
// A Table is not safe for concurrent mutation, but once built it can be read
// from any number of goroutines.
type Table struct {
	entries map[string]Annotation
}

// NewTable creates a [Table] holding the given annotations.
func NewTable(anns ...Annotation) *Table {
	t := &Table{entries: make(map[string]Annotation, len(anns))}
	for _, a := range anns {
		t.Insert(a)
	}

	return t
}

// Insert stores a, replacing any annotation already stored at the same path.
// Empty annotations are dropped; Insert reports whether a was stored.
func (t *Table) Insert(a Annotation) bool {
	if a.IsEmpty() {
		return false
	}

	if t.entries == nil {
		t.entries = make(map[string]Annotation)
	}

	a.Path = slices.Clone(a.Path)
	t.entries[a.Path.key()] = a

	return true
}

// Get returns the annotation stored at p.
func (t *Table) Get(p Path) (Annotation, bool) {
	if t == nil {
		return Annotation{}, false
	}

	a, ok := t.entries[p.key()]

	return a, ok
}

// Lookup is [Table.Get] for a dot-separated path.
func (t *Table) Lookup(dotted string) (Annotation, bool) {
	return t.Get(ParsePath(dotted))
}

// Len returns the number of stored annotations.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// All yields every annotation ordered by path.
func (t *Table) All() iter.Seq[Annotation] {
	return func(yield func(Annotation) bool) {
		if t == nil {
			return
		}

		anns := make([]Annotation, 0, len(t.entries))
		for _, a := range t.entries {
			anns = append(anns, a)
		}

		slices.SortFunc(anns, func(a, b Annotation) int {
			return slices.Compare(a.Path, b.Path)
		})

		for _, a := range anns {
			if !yield(a) {
				return
			}
		}
	}
}
