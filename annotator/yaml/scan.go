package yaml

import (
	"strconv"
	"strings"

	"go.jacobcolvin.com/schemacomment/annotation"
)

// target is a key line that can receive a comment block.
type target struct {
	indent     string
	path       annotation.Path
	line       int
	hasComment bool
}

type scope struct {
	name   string
	indent int
	seq    bool
}

type valueKind int

const (
	// valueNone opens a nested mapping (or a value on the following lines).
	valueNone valueKind = iota
	valueScalar
	valueBlock
	valueFlow
)

// scanner derives the path of every key line from indentation alone.
type scanner struct {
	stack []scope
	// block is the indentation of the line that opened a block scalar, or -1.
	block int
	// flow is the bracket depth of an unfinished flow collection.
	flow int
	// quote is the delimiter of an unfinished quoted scalar, or 0.
	quote byte
}

// scanTargets returns the key lines of lines in order. Lines must not carry
// their "\r" terminators.
func scanTargets(lines []string) []target {
	s := &scanner{block: -1}

	var targets []target

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		indent := indentWidth(line)

		if s.quote != 0 {
			if quoteEnd(line, s.quote) >= 0 {
				s.quote = 0
			}

			continue
		}

		if s.flow > 0 {
			s.flow += flowDepth(trimmed)

			continue
		}

		if s.block >= 0 {
			if trimmed == "" || indent > s.block {
				continue
			}

			s.block = -1
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if isDocumentMarker(trimmed) {
			s.stack = s.stack[:0]

			continue
		}

		for len(s.stack) > 0 && s.stack[len(s.stack)-1].indent >= indent {
			s.stack = s.stack[:len(s.stack)-1]
		}

		// The dash line itself is never a target, but keys below it are.
		if trimmed == "-" || strings.HasPrefix(trimmed, "- ") {
			s.stack = append(s.stack, scope{indent: indent, seq: true})

			item := strings.TrimLeft(trimmed[1:], " \t")

			key, rest, ok := splitKey(item)
			if !ok {
				s.value(item, indent)

				continue
			}

			if s.value(rest, indent) == valueNone {
				keyIndent := indent + len(trimmed) - len(item)
				s.stack = append(s.stack, scope{name: key, indent: keyIndent})
			}

			continue
		}

		key, rest, ok := splitKey(trimmed)
		if !ok {
			continue
		}

		path := make(annotation.Path, 0, len(s.stack)+1)
		for _, sc := range s.stack {
			if !sc.seq {
				path = append(path, sc.name)
			}
		}

		targets = append(targets, target{
			line:       i,
			path:       append(path, key),
			indent:     line[:len(line)-len(strings.TrimLeft(line, " \t"))],
			hasComment: i > 0 && isCommentAt(lines[i-1], indent),
		})

		if s.value(rest, indent) == valueNone {
			s.stack = append(s.stack, scope{name: key, indent: indent})
		}
	}

	return targets
}

// value inspects the text following a key or sequence dash and enters
// block scalar or flow collection mode when it starts one.
func (s *scanner) value(rest string, indent int) valueKind {
	kind, at := classify(rest)

	switch kind {
	case valueBlock:
		s.block = indent
	case valueFlow:
		s.flow = max(flowDepth(rest[at:]), 0)
	case valueScalar:
		if q := rest[at]; (q == '"' || q == '\'') && closingQuote(rest[at:]) < 0 {
			s.quote = q
		}
	}

	return kind
}

// classify reports what kind of value rest holds and the offset where the
// value proper starts, after any anchors and tags.
func classify(rest string) (valueKind, int) {
	i := 0
	for {
		for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
			i++
		}

		if i >= len(rest) || rest[i] == '#' {
			return valueNone, i
		}

		switch rest[i] {
		case '&', '!':
			for i < len(rest) && rest[i] != ' ' && rest[i] != '\t' {
				i++
			}

			continue
		case '|', '>':
			return valueBlock, i
		case '[', '{':
			return valueFlow, i
		}

		return valueScalar, i
	}
}

// splitKey splits "key: value" into its unquoted key and the text after the
// colon. Flow collections, aliases, and complex keys are not keys.
func splitKey(s string) (string, string, bool) {
	if s == "" {
		return "", "", false
	}

	switch s[0] {
	case '"', '\'':
		end := closingQuote(s)
		if end < 0 {
			return "", "", false
		}

		after := strings.TrimLeft(s[end+1:], " \t")
		if !strings.HasPrefix(after, ":") || !endsKey(after, 0) {
			return "", "", false
		}

		return unquote(s[:end+1]), after[1:], true

	case '{', '[', '?', '*', '&', '!', '|', '>', '%', '@', '`':
		return "", "", false
	}

	for i := range len(s) {
		switch s[i] {
		case '#':
			if i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
				return "", "", false
			}
		case ':':
			if !endsKey(s, i) {
				continue
			}

			key := strings.TrimSpace(s[:i])
			if key == "" {
				return "", "", false
			}

			return key, s[i+1:], true
		}
	}

	return "", "", false
}

// endsKey reports whether the colon at s[i] is a mapping indicator.
func endsKey(s string, i int) bool {
	return i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\t'
}

// closingQuote returns the index of the quote that closes the scalar
// starting at s[0], or -1.
func closingQuote(s string) int {
	end := quoteEnd(s[1:], s[0])
	if end < 0 {
		return -1
	}

	return end + 1
}

// quoteEnd returns the index of the first unescaped q in s, the remainder of
// a scalar quoted with q, or -1.
func quoteEnd(s string, q byte) int {
	for i := 0; i < len(s); i++ {
		switch {
		case q == '"' && s[i] == '\\':
			i++
		case q == '\'' && s[i] == '\'' && i+1 < len(s) && s[i+1] == '\'':
			i++
		case s[i] == q:
			return i
		}
	}

	return -1
}

func unquote(s string) string {
	if s[0] == '\'' {
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}

	u, err := strconv.Unquote(s)
	if err != nil {
		return s[1 : len(s)-1]
	}

	return u
}

// flowDepth returns the change in bracket nesting across s, ignoring
// brackets inside quoted scalars and comments.
func flowDepth(s string) int {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case '"', '\'':
			end := closingQuote(s[i:])
			if end < 0 {
				return depth
			}

			i += end
		case '#':
			if i == 0 || s[i-1] == ' ' || s[i-1] == '\t' {
				return depth
			}
		}
	}

	return depth
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func isCommentAt(line string, indent int) bool {
	return annotation.IsComment(line) && indentWidth(line) == indent
}

func isDocumentMarker(s string) bool {
	if s == "..." {
		return true
	}

	return strings.HasPrefix(s, "---") && (len(s) == 3 || s[3] == ' ' || s[3] == '\t')
}
