// Package log provides a small structured logging interface built on
// [log/slog].
//
// A [Logger] is an immutable value. Configuration is applied with functional
// options when the logger is made and whenever it is wrapped:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Debug("scanned", slog.Int("args", n))
//
// # Default Logger
//
// The package-level functions ([Info], [Debug], [Error], ...) write through a
// default logger that writes to stderr. [Config] replaces it with a wrapped
// copy, which is how the lkcmdline command applies its --log-* flags.
//
// # Levels and Formats
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Output is [FormatJSON] (default) or
// [FormatText]. With [WithPretty] enabled either format is rendered with
// lipgloss styles; colors are only emitted when the output is a terminal.
//
// # Time Layouts
//
// [WithTimeLayout] accepts any [time] package layout name such as "RFC3339"
// or "Kitchen", a few short aliases ("ms", "us", "ns"), or a literal layout.
// An empty layout or "none" disables timestamps.
package log
