// Package main provides the CLI entry point for schemacomment, a tool that
// documents TOML and YAML files with comments taken from a JSON Schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/schemacomment/annotator"
	"go.jacobcolvin.com/schemacomment/log"
	"go.jacobcolvin.com/schemacomment/schema"
	"go.jacobcolvin.com/schemacomment/version"
)

func main() {
	err := newCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := annotator.NewConfig()
	logCfg := log.NewConfig()

	cmd := &cobra.Command{
		Use:   "schemacomment --schema <schema.json> [--input <file>] [flags]",
		Short: "Add JSON Schema documentation to TOML and YAML files as comments",
		Long: `schemacomment reads the titles, descriptions, and default values of a JSON
Schema and writes them as comments above the matching tables and keys of a
TOML or YAML document. The rest of the document is left untouched.`,
		Args:          cobra.NoArgs,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logCfg.NewLogger(stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(logger)

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg, stdin, stdout)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cfg.RegisterFlags(cmd.Flags())
	logCfg.RegisterFlags(cmd.PersistentFlags())

	err := cmd.MarkFlagRequired(cfg.Flags.Schema)
	if err != nil {
		fmt.Fprintf(stderr, "mark %s required: %v\n", cfg.Flags.Schema, err)
	}

	for _, register := range []func(*cobra.Command) error{cfg.RegisterCompletions, logCfg.RegisterCompletions} {
		err := register(cmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	return cmd
}

func run(cfg *annotator.Config, stdin io.Reader, stdout io.Writer) error {
	annCfg, err := cfg.NewAnnotationConfig()
	if err != nil {
		return err
	}

	format, err := cfg.TargetFormat()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Schema)
	if err != nil {
		return fmt.Errorf("%w: read schema: %w", annotator.ErrIO, err)
	}

	tree, err := schema.Parse(data)
	if err != nil {
		return fmt.Errorf("schema %s: %w", cfg.Schema, err)
	}

	input, err := readInput(cfg.Input, stdin)
	if err != nil {
		return err
	}

	slog.Debug("annotating",
		slog.String("input", cfg.Input),
		slog.String("format", string(format)),
		slog.String("existing", annCfg.ExistingComments.String()),
	)

	out, err := annotator.Annotate(tree, input, format, annCfg)
	if err != nil {
		return fmt.Errorf("annotate %s: %w", cfg.Input, err)
	}

	return writeOutput(cfg.Output, cfg.Force, out, stdout)
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: read input: %w", annotator.ErrIO, err)
		}

		return string(data), nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("%w: no input: stdin is a terminal, use --input or pipe a document", annotator.ErrInvalidOption)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: read stdin: %w", annotator.ErrIO, err)
	}

	return string(data), nil
}

func writeOutput(path string, force bool, out string, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, out)
		if err != nil {
			return fmt.Errorf("%w: write output: %w", annotator.ErrIO, err)
		}

		return nil
	}

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%w: %s already exists, use --force to overwrite", annotator.ErrIO, path)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", annotator.ErrIO, err)
		}
	}

	err := os.WriteFile(path, []byte(out), 0o644)
	if err != nil {
		return fmt.Errorf("%w: write output: %w", annotator.ErrIO, err)
	}

	return nil
}
