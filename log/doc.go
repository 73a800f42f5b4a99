// Package log builds [log/slog] handlers from level and format names.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] use the
// standard library handlers, and [FormatText] uses [charmlog.Logger] for
// output meant to be read by people. Levels are [LevelError], [LevelWarn],
// [LevelInfo], and [LevelDebug].
//
// Command line tools register the flags of a [Config] and build the logger at
// startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	if err != nil {
//		return err
//	}
//
//	slog.SetDefault(logger)
//
// [charmlog.Logger]: https://pkg.go.dev/charm.land/log/v2#Logger
package log
