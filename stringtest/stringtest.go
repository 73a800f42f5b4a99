// Package stringtest builds multi-line text fixtures for tests.
package stringtest

import "strings"

// Input dedents a raw string literal so fixtures can be indented along with
// the surrounding test code.
//
// One leading newline is removed, as is one trailing newline together with
// any indentation after it (the line holding a closing backtick). The
// indentation common to all non-blank lines is stripped, and whitespace-only
// lines become empty.
//
//	stringtest.Input(`
//	    server:
//	      port: 8080`) // -> "server:\n  port: 8080"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 && strings.Trim(s[i+1:], " \t") == "" {
		s = s[:i]
	}

	lines := strings.Split(s, "\n")

	prefix := ""
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = indent
			first = false

			continue
		}

		prefix = commonPrefix(prefix, indent)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

// Doc is [Input] with a single trailing LF, the shape of a text file.
func Doc(s string) string {
	return Input(s) + "\n"
}

// JoinLF joins multiple strings with LF line endings.
//
//	want := stringtest.JoinLF(
//		"# Port",
//		"port = 8080",
//	) // -> "# Port\nport = 8080"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// Lines joins multiple strings with LF line endings and terminates the last
// one, the shape of a text file.
func Lines(ss ...string) string {
	if len(ss) == 0 {
		return ""
	}

	return JoinLF(ss...) + "\n"
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))

	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return a[:i]
}
