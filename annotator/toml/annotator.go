package toml

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"go.jacobcolvin.com/schemacomment/annotation"
)

// Annotator places annotation comments into TOML documents.
//
// Create instances with [New].
type Annotator struct {
	formatter *annotation.Formatter
	behavior  annotation.Behavior
}

// New creates a new [Annotator] for cfg.
func New(cfg annotation.Config) *Annotator {
	return &Annotator{
		formatter: annotation.NewFormatter(cfg),
		behavior:  cfg.ExistingComments,
	}
}

// Annotate returns content with a comment block placed before every table
// header and key whose path has an annotation in anns.
//
// Content that is not valid TOML returns an error wrapping
// [annotation.ErrParse], and no output is produced.
func (a *Annotator) Annotate(content string, anns *annotation.Table) (string, error) {
	err := validate(content)
	if err != nil {
		return "", err
	}

	if anns.Len() == 0 {
		return content, nil
	}

	doc := parseDocument(content)
	a.annotateTable(doc, doc.root, nil, anns)

	return doc.String(), nil
}

func validate(content string) error {
	var v map[string]any

	err := gotoml.Unmarshal([]byte(content), &v)
	if err == nil {
		return nil
	}

	var derr *gotoml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()

		return fmt.Errorf("%w: line %d, column %d: %w", annotation.ErrParse, row, col, err)
	}

	return fmt.Errorf("%w: %w", annotation.ErrParse, err)
}

func (a *Annotator) annotateTable(doc *document, t *table, path annotation.Path, anns *annotation.Table) {
	// Placement never adds items, but iterate a snapshot regardless.
	for _, it := range slices.Clone(t.items) {
		p := path.Child(it.key)
		a.place(doc, it, p, anns)

		// Inline table contents are not addressable.
		if it.kind == kindTable || it.kind == kindArrayOfTables {
			a.annotateTable(doc, it.table, p, anns)
		}
	}
}

// place merges the annotation for p, if any, into the decor of it.
func (a *Annotator) place(doc *document, it *item, p annotation.Path, anns *annotation.Table) {
	ann, ok := anns.Get(p)
	if !ok {
		return
	}

	if it.decor == nil {
		slog.Debug("dropping annotation for table without a header",
			slog.String("path", p.String()),
		)

		return
	}

	block := a.formatter.Lines(ann, it.decor.indent)
	if len(block) == 0 {
		return
	}

	for i := range block {
		block[i] += doc.eol
	}

	merged, changed := merge(doc.decorLines(it.decor), block, a.behavior)
	if changed {
		doc.setDecor(it.decor, merged)
	}
}

// merge combines the existing decor lines with a new comment block. Blank
// lines at the start of the decor stay in front so section spacing is kept.
// It reports false when the decor should be left unchanged.
func merge(existing, block []string, behavior annotation.Behavior) ([]string, bool) {
	n := 0
	for n < len(existing) && strings.TrimSpace(existing[n]) == "" {
		n++
	}

	lead, rest := existing[:n], existing[n:]

	out := make([]string, 0, len(existing)+len(block))

	if len(rest) == 0 {
		out = append(out, existing...)

		return append(out, block...), true
	}

	switch behavior {
	case annotation.Skip:
		return existing, false
	case annotation.Append:
		out = append(out, existing...)
		out = append(out, block...)
	case annotation.Replace:
		out = append(out, lead...)
		out = append(out, block...)
	default:
		out = append(out, lead...)
		out = append(out, block...)
		out = append(out, rest...)
	}

	return out, true
}
