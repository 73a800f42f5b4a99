package annotator

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/schemacomment/annotation"
)

// Values accepted by the include flag.
const (
	IncludeTitle       = "title"
	IncludeDescription = "description"
	IncludeBoth        = "both"
)

// GetAllIncludeStrings returns the values accepted by the include flag.
func GetAllIncludeStrings() []string {
	return []string{IncludeTitle, IncludeDescription, IncludeBoth}
}

// Flags holds CLI flag names for annotator configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Schema         string
	Input          string
	Output         string
	Format         string
	Include        string
	IncludeDefault string
	MaxWidth       string
	Existing       string
	Force          string
}

// Config holds CLI flag values for annotator configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewAnnotationConfig] and
// [Config.TargetFormat] to configure an [Annotator].
type Config struct {
	Flags Flags
	// Schema is the path of the JSON or YAML schema file.
	Schema string
	// Input is the path of the target document, or "-" for stdin.
	Input string
	// Output is the path to write to. Empty means stdout.
	Output         string
	Format         string
	Include        string
	Existing       string
	MaxWidth       int
	IncludeDefault bool
	// Force allows overwriting an existing output file.
	Force bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Schema:         "schema",
		Input:          "input",
		Output:         "output",
		Format:         "format",
		Include:        "include",
		IncludeDefault: "include-default",
		MaxWidth:       "max-width",
		Existing:       "existing",
		Force:          "force",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds annotator flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Schema, c.Flags.Schema, "s", "",
		"schema file (JSON or YAML)")
	flags.StringVarP(&c.Input, c.Flags.Input, "i", "-",
		"document to annotate (- for stdin)")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "",
		"output file path (default stdout)")
	flags.StringVar(&c.Format, c.Flags.Format, "",
		fmt.Sprintf("document format, one of: %s (default: detect from file extension)", GetAllFormatStrings()))
	flags.StringVar(&c.Include, c.Flags.Include, IncludeBoth,
		fmt.Sprintf("schema fields to include, one of: %s", GetAllIncludeStrings()))
	flags.BoolVar(&c.IncludeDefault, c.Flags.IncludeDefault, false,
		"include default values")
	flags.IntVar(&c.MaxWidth, c.Flags.MaxWidth, annotation.DefaultMaxLineWidth,
		"maximum comment line width")
	flags.StringVar(&c.Existing, c.Flags.Existing, annotation.Prepend.String(),
		fmt.Sprintf("how to treat existing comments, one of: %s", annotation.GetAllBehaviorStrings()))
	flags.BoolVarP(&c.Force, c.Flags.Force, "f", false,
		"overwrite the output file if it exists")
}

// RegisterCompletions registers shell completions for annotator flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	fixed := map[string][]string{
		c.Flags.Format:   GetAllFormatStrings(),
		c.Flags.Include:  GetAllIncludeStrings(),
		c.Flags.Existing: annotation.GetAllBehaviorStrings(),
	}

	for flag, values := range fixed {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Schema,
		cobra.FixedCompletions([]string{"json", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Schema, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.MaxWidth,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.MaxWidth, err)
	}

	return nil
}

// NewAnnotationConfig creates an [annotation.Config] from the flag values.
func (c *Config) NewAnnotationConfig() (annotation.Config, error) {
	cfg := annotation.DefaultConfig()

	switch strings.ToLower(c.Include) {
	case IncludeTitle:
		cfg.IncludeDescription = false
	case IncludeDescription:
		cfg.IncludeTitle = false
	case IncludeBoth, "":
	default:
		return cfg, fmt.Errorf("%w: %s: %q", ErrInvalidOption, c.Flags.Include, c.Include)
	}

	if c.MaxWidth < 0 {
		return cfg, fmt.Errorf("%w: %s must not be negative: %d", ErrInvalidOption, c.Flags.MaxWidth, c.MaxWidth)
	}

	cfg.MaxLineWidth = c.MaxWidth
	cfg.IncludeDefault = c.IncludeDefault

	if c.Existing != "" {
		behavior, err := annotation.ParseBehavior(c.Existing)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidOption, c.Flags.Existing, err)
		}

		cfg.ExistingComments = behavior
	}

	return cfg, nil
}

// TargetFormat decides the format of the input document. An explicit format
// flag wins, then the input file's extension. Input read from stdin falls
// back to the output file's extension, and then to YAML.
func (c *Config) TargetFormat() (Format, error) {
	if c.Format != "" {
		f, err := ParseFormat(c.Format)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrInvalidOption, c.Flags.Format, err)
		}

		return f, nil
	}

	if c.Input != "" && c.Input != "-" {
		f, ok := FormatFromPath(c.Input)
		if !ok {
			return "", fmt.Errorf("%w: cannot detect format of %q, set --%s",
				ErrUnknownFormat, c.Input, c.Flags.Format)
		}

		return f, nil
	}

	if f, ok := FormatFromPath(c.Output); ok {
		return f, nil
	}

	return FormatYAML, nil
}
