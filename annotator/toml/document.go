package toml

import (
	"slices"
	"strings"
)

type itemKind int

const (
	kindValue itemKind = iota
	kindInlineTable
	kindTable
	kindArrayOfTables
)

// decor is the run of blank and comment lines that precedes a header or key
// line, as the half-open line range [start, end). The owning line is end.
type decor struct {
	indent string
	start  int
	end    int
}

type item struct {
	decor *decor
	// table holds the children that receive annotations. For an array of
	// tables it is the first element.
	table *table
	// last is where later headers and dotted keys attach. It differs from
	// table only for arrays of tables.
	last *table
	key  string
	kind itemKind
}

type table struct {
	byKey map[string]*item
	items []*item
}

func newTable() *table {
	return &table{byKey: make(map[string]*item)}
}

func (t *table) add(it *item) {
	t.byKey[it.key] = it
	t.items = append(t.items, it)
}

// descend returns the table that definitions under key extend, creating an
// implicit table when key is not yet defined.
func (t *table) descend(key string) *table {
	it, ok := t.byKey[key]
	if !ok {
		tbl := newTable()
		it = &item{key: key, kind: kindTable, table: tbl, last: tbl}
		t.add(it)
	}

	if it.last == nil {
		// Values cannot be extended; keep parsing without attaching.
		return newTable()
	}

	return it.last
}

type edit struct {
	lines []string
	start int
	end   int
}

// document is a format-preserving view of TOML source. Lines are split on
// "\n" only, so a CRLF document keeps its "\r" on every line and joining the
// lines back reproduces the source exactly.
type document struct {
	root  *table
	src   string
	eol   string
	lines []string
	edits []edit
}

// parseDocument builds the item tree of src. It assumes src is valid TOML.
func parseDocument(src string) *document {
	d := &document{
		src:   src,
		lines: strings.Split(src, "\n"),
		root:  newTable(),
	}

	if strings.HasSuffix(d.lines[0], "\r") {
		d.eol = "\r"
	}

	current := d.root
	pending := 0

	for row := 0; row < len(d.lines); row++ {
		line := d.lines[row]

		col := skipSpace(line, 0)
		if col == len(line) || line[col] == '#' || line[col] == '\r' {
			continue
		}

		dec := &decor{start: pending, end: row, indent: line[:col]}

		if line[col] == '[' {
			array := strings.HasPrefix(line[col:], "[[")

			start := col + 1
			if array {
				start++
			}

			keys, _ := parseKey(line, start)
			if len(keys) > 0 {
				current = d.openTable(keys, array, dec)
			}
		} else {
			keys, next := parseKey(line, col)

			next = skipSpace(line, next)
			if next < len(line) && line[next] == '=' {
				next++
			}

			value := skipSpace(line, next)
			inline := value < len(line) && line[value] == '{'

			if len(keys) > 0 {
				d.setKey(current, keys, inline, dec)
			}

			row = valueEnd(d.lines, row, next)
		}

		pending = row + 1
	}

	return d
}

// openTable resolves a [table] or [[array]] header and returns the table
// that subsequent keys belong to.
func (d *document) openTable(keys []string, array bool, dec *decor) *table {
	t := d.root
	for _, k := range keys[:len(keys)-1] {
		t = t.descend(k)
	}

	name := keys[len(keys)-1]
	it, ok := t.byKey[name]

	if array {
		tbl := newTable()
		if !ok {
			t.add(&item{key: name, kind: kindArrayOfTables, decor: dec, table: tbl, last: tbl})
		} else {
			it.last = tbl
		}

		return tbl
	}

	if !ok {
		tbl := newTable()
		it = &item{key: name, kind: kindTable, table: tbl, last: tbl}
		t.add(it)
	}

	// A table first created implicitly gets its header here.
	if it.decor == nil {
		it.decor = dec
	}

	if it.last == nil {
		return newTable()
	}

	return it.last
}

func (d *document) setKey(t *table, keys []string, inline bool, dec *decor) {
	for _, k := range keys[:len(keys)-1] {
		t = t.descend(k)
	}

	kind := kindValue
	if inline {
		kind = kindInlineTable
	}

	t.add(&item{key: keys[len(keys)-1], kind: kind, decor: dec})
}

func (d *document) decorLines(dec *decor) []string {
	return d.lines[dec.start:dec.end]
}

func (d *document) setDecor(dec *decor, lines []string) {
	d.edits = append(d.edits, edit{start: dec.start, end: dec.end, lines: lines})
}

// String renders the document with all decor edits applied.
func (d *document) String() string {
	if len(d.edits) == 0 {
		return d.src
	}

	slices.SortFunc(d.edits, func(a, b edit) int {
		return a.start - b.start
	})

	out := make([]string, 0, len(d.lines)+len(d.edits)*4)
	prev := 0

	for _, e := range d.edits {
		out = append(out, d.lines[prev:e.start]...)
		out = append(out, e.lines...)
		prev = e.end
	}

	out = append(out, d.lines[prev:]...)

	return strings.Join(out, "\n")
}
