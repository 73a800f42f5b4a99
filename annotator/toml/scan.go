package toml

import (
	"strconv"
	"strings"
)

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	return i
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// parseKey reads a possibly dotted key starting at s[i:]. It returns the
// unquoted segments and the index just past the key.
func parseKey(s string, i int) ([]string, int) {
	var segs []string

	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return segs, i
		}

		var seg string

		switch s[i] {
		case '"':
			j := i + 1
			for j < len(s) && s[j] != '"' {
				if s[j] == '\\' {
					j++
				}

				j++
			}

			j = min(j, len(s))
			seg = s[i+1 : j]

			if j < len(s) {
				if u, err := strconv.Unquote(s[i : j+1]); err == nil {
					seg = u
				}
			}

			i = min(j+1, len(s))

		case '\'':
			j := strings.IndexByte(s[i+1:], '\'')
			if j < 0 {
				return append(segs, s[i+1:]), len(s)
			}

			seg = s[i+1 : i+1+j]
			i += j + 2

		default:
			j := i
			for j < len(s) && isBareKeyChar(s[j]) {
				j++
			}

			if j == i {
				return segs, i
			}

			seg = s[i:j]
			i = j
		}

		segs = append(segs, seg)

		i = skipSpace(s, i)
		if i >= len(s) || s[i] != '.' {
			return segs, i
		}

		i++
	}
}

// valueEnd scans a value that starts on lines[row] at col and returns the
// row it ends on. Multi-line strings and arrays span several rows; their
// continuation lines are never statements.
func valueEnd(lines []string, row, col int) int {
	var (
		quote string
		depth int
	)

	for ; row < len(lines); row, col = row+1, 0 {
		s := lines[row]

		for col < len(s) {
			c := s[col]

			switch quote {
			case `"`, `'`:
				if c == '\\' && quote == `"` {
					col += 2

					continue
				}

				if c == quote[0] {
					quote = ""
				}

				col++

				continue

			case `"""`, `'''`:
				if c == '\\' && quote == `"""` {
					col += 2

					continue
				}

				if c == quote[0] {
					n := runLength(s, col, c)
					col += n

					// The closing delimiter is the last three quotes of a run.
					if n >= 3 {
						quote = ""
					}

					continue
				}

				col++

				continue
			}

			switch c {
			case '#':
				col = len(s)

				continue

			case '"', '\'':
				if runLength(s, col, c) >= 3 {
					quote = s[col : col+3]
					col += 3

					continue
				}

				quote = string(c)

			case '[', '{':
				depth++

			case ']', '}':
				depth--
			}

			col++
		}

		// Single-line strings never continue past the end of a line.
		if quote == `"` || quote == `'` {
			quote = ""
		}

		if depth <= 0 && quote == "" {
			return row
		}
	}

	return len(lines) - 1
}

func runLength(s string, i int, c byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == c {
		n++
	}

	return n
}
