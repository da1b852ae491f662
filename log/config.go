package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// FormatTime renders a record timestamp. An empty result omits the time.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the layout used when no valid layout is provided.
const DefaultTimeLayout = time.RFC3339

const (
	// DefaultCaller is the default for including the caller's source location.
	DefaultCaller = false

	// DefaultPretty is the default for styled output.
	DefaultPretty = false
)

// config is the immutable configuration of a [Logger].
// Options receive and return copies, so a config is never shared mutably.
type config struct {
	output     io.Writer
	formatTime FormatTime
	attrs      []slog.Attr
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

// makeConfig returns the default configuration for w with opts applied.
func makeConfig(w io.Writer, opts ...Option) config {
	return apply(WithDefaults(w)(config{}), opts...)
}

// handler returns the [slog.Handler] described by c.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       slog.Level(c.level),
		ReplaceAttr: c.replaceAttr,
	}

	var h slog.Handler

	switch {
	case c.pretty:
		h = newPrettyHandler(c.output, opts, c.formatTime, c.format == FormatJSON)
	case c.format == FormatText:
		h = slog.NewTextHandler(c.output, opts)
	case c.format == FormatJSON:
		h = slog.NewJSONHandler(c.output, opts)
	default:
		return slog.DiscardHandler
	}

	if len(c.attrs) > 0 {
		h = h.WithAttrs(c.attrs)
	}

	return h
}

// replaceAttr rewrites the built-in time and level attributes of the
// standard handlers.
func (c config) replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			s := c.formatTime(t)
			if s == "" {
				return slog.Attr{}
			}

			a.Value = slog.StringValue(s)
		}

	case slog.LevelKey:
		// Show "TRACE" rather than "DEBUG-4".
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToUpper(Level(l).String()))
		}
	}

	return a
}

// timeLayout maps normalized layout names to layouts.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"rfc1123":     time.RFC1123,
	"rfc1123z":    time.RFC1123Z,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"ms":          time.StampMilli,
	"us":          time.StampMicro,
	"ns":          time.StampNano,
	"none":        "",
}

// makeFormatTime returns a FormatTime for the named or literal layout.
// Names are matched ignoring case and any non-alphanumeric characters.
func makeFormatTime(layout string) FormatTime {
	key := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return -1
	}, strings.ToLower(layout))

	if std, ok := timeLayout[key]; ok {
		layout = std
	} else if key == "" {
		layout = ""
	}

	if layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
