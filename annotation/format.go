package annotation

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Marker starts every comment line produced by a [Formatter].
const Marker = "#"

// fallbackLineWidth is used when [Config.MaxLineWidth] is unset.
const fallbackLineWidth = 78

// Formatter renders annotations into comment lines according to a [Config].
type Formatter struct {
	cfg Config
}

// NewFormatter creates a [Formatter] for cfg.
func NewFormatter(cfg Config) *Formatter {
	return &Formatter{cfg: cfg}
}

// Lines renders a as comment lines, each prefixed with indent and [Marker].
// It returns nil when the configuration selects nothing that a carries.
func (f *Formatter) Lines(a Annotation, indent string) []string {
	var lines []string

	if f.cfg.IncludeTitle && a.Title != "" {
		lines = appendComment(lines, indent, strings.TrimSpace(a.Title))
	}

	if f.cfg.IncludeDescription && a.Description != "" {
		wrapped := wordwrap.WrapString(strings.TrimSpace(a.Description), uint(f.wrapWidth(indent)))
		lines = appendComment(lines, indent, wrapped)
	}

	if f.cfg.IncludeDefault && a.Default != "" {
		lines = appendComment(lines, indent, "Default: "+a.Default)
	}

	return lines
}

// wrapWidth is the room left for description text on one line.
func (f *Formatter) wrapWidth(indent string) int {
	width := f.cfg.MaxLineWidth
	if width <= 0 {
		width = fallbackLineWidth
	}

	width -= len(indent) + len(Marker) + 1

	return max(width, 1)
}

// appendComment appends one comment line per line of text, so that no line
// break in a title or value escapes the comment.
func appendComment(lines []string, indent, text string) []string {
	for l := range strings.SplitSeq(text, "\n") {
		lines = append(lines, commentLine(indent, l))
	}

	return lines
}

func commentLine(indent, text string) string {
	text = strings.TrimRight(text, " \t\r")
	if text == "" {
		return indent + Marker
	}

	return indent + Marker + " " + text
}

// IsComment reports whether line, ignoring surrounding whitespace, is a
// comment.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Marker)
}
