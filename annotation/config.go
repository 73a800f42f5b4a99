package annotation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBehavior indicates an unrecognized existing-comment behavior name.
var ErrUnknownBehavior = errors.New("unknown existing comment behavior")

// Behavior decides how a new comment block merges with a comment that already
// precedes its target. The zero value is [Prepend].
type Behavior int

const (
	// Prepend places the new block before the existing comment.
	Prepend Behavior = iota
	// Skip leaves targets that already have a comment untouched.
	Skip
	// Append places the new block after the existing comment.
	Append
	// Replace discards the existing comment.
	Replace
)

var behaviorNames = map[Behavior]string{
	Prepend: "prepend",
	Skip:    "skip",
	Append:  "append",
	Replace: "replace",
}

// String returns the lower-case name of b.
func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}

	return fmt.Sprintf("Behavior(%d)", int(b))
}

// ParseBehavior parses a behavior name, case-insensitively.
func ParseBehavior(s string) (Behavior, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for b, name := range behaviorNames {
		if name == want {
			return b, nil
		}
	}

	return Prepend, fmt.Errorf("%w: %q", ErrUnknownBehavior, s)
}

// GetAllBehaviorStrings returns every behavior name in declaration order.
func GetAllBehaviorStrings() []string {
	return []string{
		Skip.String(),
		Prepend.String(),
		Append.String(),
		Replace.String(),
	}
}

// Config controls which annotation fields become comments and how they are
// placed. It is a plain value; engines never modify it.
type Config struct {
	// MaxLineWidth is the wrap width for descriptions, including indentation
	// and the comment marker. Zero selects a fallback of 78.
	MaxLineWidth int
	// ExistingComments selects the merge policy for targets that already
	// carry a comment.
	ExistingComments   Behavior
	IncludeTitle       bool
	IncludeDescription bool
	IncludeDefault     bool
}

// DefaultMaxLineWidth is the wrap width used by [DefaultConfig].
const DefaultMaxLineWidth = 80

// DefaultConfig returns a [Config] that includes titles and descriptions,
// wraps at [DefaultMaxLineWidth], and prepends to existing comments.
func DefaultConfig() Config {
	return Config{
		IncludeTitle:       true,
		IncludeDescription: true,
		MaxLineWidth:       DefaultMaxLineWidth,
		ExistingComments:   Prepend,
	}
}

// TitlesOnly returns [DefaultConfig] with descriptions disabled.
func TitlesOnly() Config {
	c := DefaultConfig()
	c.IncludeDescription = false

	return c
}

// DescriptionsOnly returns [DefaultConfig] with titles disabled.
func DescriptionsOnly() Config {
	c := DefaultConfig()
	c.IncludeTitle = false

	return c
}
