package annotator_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/schemacomment/annotation"
	"go.jacobcolvin.com/schemacomment/annotator"
)

func parseFlags(t *testing.T, args ...string) *annotator.Config {
	t.Helper()

	cfg := annotator.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse(args))

	return cfg
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := parseFlags(t)

	assert.Equal(t, "-", cfg.Input)
	assert.Empty(t, cfg.Output)
	assert.Equal(t, annotation.DefaultMaxLineWidth, cfg.MaxWidth)

	got, err := cfg.NewAnnotationConfig()
	require.NoError(t, err)
	assert.Equal(t, annotation.DefaultConfig(), got)
}

func TestConfigNewAnnotationConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		args []string
		want annotation.Config
	}{
		"titles only": {
			args: []string{"--include", "title"},
			want: annotation.TitlesOnly(),
		},
		"descriptions only": {
			args: []string{"--include", "Description"},
			want: annotation.DescriptionsOnly(),
		},
		"all options": {
			args: []string{"--include-default", "--max-width", "100", "--existing", "replace"},
			want: annotation.Config{
				IncludeTitle:       true,
				IncludeDescription: true,
				IncludeDefault:     true,
				MaxLineWidth:       100,
				ExistingComments:   annotation.Replace,
			},
		},
		"zero width selects the fallback": {
			args: []string{"--max-width", "0", "--existing", "SKIP"},
			want: annotation.Config{
				IncludeTitle:       true,
				IncludeDescription: true,
				ExistingComments:   annotation.Skip,
			},
		},
		"unknown include": {
			args: []string{"--include", "everything"},
			err:  annotator.ErrInvalidOption,
		},
		"unknown behavior": {
			args: []string{"--existing", "merge"},
			err:  annotation.ErrUnknownBehavior,
		},
		"negative width": {
			args: []string{"--max-width=-1"},
			err:  annotator.ErrInvalidOption,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(t, tc.args...).NewAnnotationConfig()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigTargetFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		args []string
		want annotator.Format
	}{
		"from input extension": {
			args: []string{"-i", "config.toml"},
			want: annotator.FormatTOML,
		},
		"flag overrides extension": {
			args: []string{"-i", "config.toml", "--format", "yaml"},
			want: annotator.FormatYAML,
		},
		"stdin uses output extension": {
			args: []string{"-o", "out.toml"},
			want: annotator.FormatTOML,
		},
		"stdin defaults to yaml": {
			args: []string{"--input=-", "-o", "out.txt"},
			want: annotator.FormatYAML,
		},
		"undetectable input": {
			args: []string{"-i", "config.ini"},
			err:  annotator.ErrUnknownFormat,
		},
		"invalid format flag": {
			args: []string{"--format", "ini"},
			err:  annotator.ErrInvalidOption,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(t, tc.args...).TargetFormat()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := annotator.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	fn, ok := cmd.GetFlagCompletionFunc("existing")
	require.True(t, ok)

	got, directive := fn(cmd, nil, "")
	assert.Equal(t, annotation.GetAllBehaviorStrings(), got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
