package yaml

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-yaml/parser"

	"go.jacobcolvin.com/schemacomment/annotation"
)

// Annotator places annotation comments into YAML documents.
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

// Annotate returns content with a comment block inserted above every mapping
// key whose path has an annotation in anns.
//
// Content that is not valid YAML returns an error wrapping
// [annotation.ErrParse], and no output is produced.
func (a *Annotator) Annotate(content string, anns *annotation.Table) (string, error) {
	_, err := parser.ParseBytes([]byte(content), 0)
	if err != nil {
		return "", fmt.Errorf("%w: %w", annotation.ErrParse, err)
	}

	if anns.Len() == 0 {
		return content, nil
	}

	lines := strings.Split(content, "\n")

	eol := ""
	if strings.HasSuffix(lines[0], "\r") {
		eol = "\r"
	}

	plain := make([]string, len(lines))
	for i, line := range lines {
		plain[i] = strings.TrimSuffix(line, "\r")
	}

	targets := scanTargets(plain)

	// Work from the bottom up so that earlier line numbers stay valid.
	for _, t := range slices.Backward(targets) {
		ann, ok := anns.Get(t.path)
		if !ok {
			continue
		}

		block := a.formatter.Lines(ann, t.indent)
		if len(block) == 0 {
			continue
		}

		for i := range block {
			block[i] += eol
		}

		start := t.line

		if t.hasComment {
			switch a.behavior {
			case annotation.Skip:
				continue
			case annotation.Replace:
				for start > 0 && annotation.IsComment(plain[start-1]) {
					start--
				}
			case annotation.Prepend, annotation.Append:
				// Both land directly above the key, after the existing comment.
			}
		}

		lines = slices.Replace(lines, start, t.line, block...)
	}

	return strings.Join(lines, "\n"), nil
}
