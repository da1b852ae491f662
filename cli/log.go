package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lkcmdline/cmdline"
	"github.com/ardnew/lkcmdline/log"
)

// logFormat configures the logger format as a side effect of parsing, so
// that errors reported during parsing already use it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level (${enum})."`
	Format     logFormat `default:"text"    enum:"${logFormatEnum}" help:"Set log format (${enum})."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp layout."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them, so the
// logger is configured regardless of flag position. Boolean flags never reach
// a TextUnmarshaler and are only applied here until [logConfig.start].
//
// Flags are split on '=' the way kernel parameters are.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return
		}

		name, ok := strings.CutPrefix(args[i], "--")
		if !ok {
			continue
		}

		arg := cmdline.NewArg([]byte(name))
		value, assigned := arg.Value()

		// next returns the flag value, consuming the following argument when
		// the value was not attached with '='.
		next := func() []byte {
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++

				return []byte(args[i])
			}

			return value.Bytes()
		}

		switch {
		case arg.MatchesString("log-level"):
			_ = f.Level.UnmarshalText(next())

		case arg.MatchesString("log-format"):
			_ = f.Format.UnmarshalText(next())

		case arg.MatchesString("log-pretty"), arg.MatchesString("no-log-pretty"):
			if v, ok := parseBool(value, assigned, arg.MatchesString("log-pretty")); ok {
				f.Pretty = v
				log.Config(log.WithPretty(v))
			}

		case arg.MatchesString("log-caller"), arg.MatchesString("no-log-caller"):
			if v, ok := parseBool(value, assigned, arg.MatchesString("log-caller")); ok {
				f.Caller = v
				log.Config(log.WithCaller(v))
			}
		}
	}
}

// parseBool interprets a boolean flag. A bare flag yields set; an assigned
// value is parsed and inverted for negated (set == false) flags.
func parseBool(value cmdline.View, assigned, set bool) (v, ok bool) {
	if !assigned {
		return set, true
	}

	b, err := strconv.ParseBool(value.String())
	if err != nil {
		return false, false
	}

	return b == set, true
}
