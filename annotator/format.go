package annotator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the syntax of a target document.
type Format string

const (
	// FormatTOML selects the TOML engine.
	FormatTOML Format = "toml"
	// FormatYAML selects the YAML engine.
	FormatYAML Format = "yaml"
)

// Extension returns the canonical file extension for f, without a dot.
func (f Format) Extension() string {
	return string(f)
}

// ParseFormat parses a format name, case-insensitively. "yml" is accepted
// as an alias for "yaml".
func ParseFormat(s string) (Format, error) {
	f, ok := FormatFromExtension(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}

	return f, nil
}

// FormatFromExtension detects the format for a file extension, with or
// without its leading dot. It reports false for anything but toml, yaml,
// and yml.
func FormatFromExtension(ext string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		return FormatTOML, true
	case "yaml", "yml":
		return FormatYAML, true
	}

	return "", false
}

// FormatFromPath detects the format of a file from its extension.
func FormatFromPath(path string) (Format, bool) {
	return FormatFromExtension(filepath.Ext(path))
}

// GetAllFormatStrings returns the names of all supported formats.
func GetAllFormatStrings() []string {
	return []string{string(FormatTOML), string(FormatYAML)}
}
