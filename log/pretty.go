package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handler. Styles come from a
// renderer bound to the output writer, so color is only emitted when that
// writer is a terminal.
type palette struct {
	key, str, num, yes, no, dur, tim, null lipgloss.Style
	level                                  map[slog.Level]lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:  fg("8"),
		str:  fg("6"),
		num:  fg("3"),
		yes:  fg("2"),
		no:   fg("1"),
		dur:  fg("5"),
		tim:  fg("4"),
		null: fg("8"),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): fg("8"),
			slog.LevelDebug:        fg("4"),
			slog.LevelInfo:         fg("2"),
			slog.LevelWarn:         fg("3").Bold(true),
			slog.LevelError:        fg("1").Bold(true),
		},
	}
}

// levelStyle returns the style of the nearest named level at or below l.
func (p palette) levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.level[slog.LevelError]
	case l >= slog.LevelWarn:
		return p.level[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return p.level[slog.LevelInfo]
	case l >= slog.LevelDebug:
		return p.level[slog.LevelDebug]
	default:
		return p.level[slog.Level(LevelTrace)]
	}
}

// prettyHandler renders records as styled single lines (text) or as
// indented multi-line objects (json).
type prettyHandler struct {
	opts       slog.HandlerOptions
	formatTime FormatTime
	pal        palette
	mu         *sync.Mutex
	w          io.Writer
	json       bool
	prefix     string      // dotted group prefix for new attributes
	attrs      []slog.Attr // attributes from WithAttrs, already prefixed
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
	json bool,
) *prettyHandler {
	return &prettyHandler{
		opts:       *opts,
		formatTime: formatTime,
		pal:        makePalette(w),
		mu:         &sync.Mutex{},
		w:          w,
		json:       json,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var fields []slog.Attr

	if !r.Time.IsZero() {
		if s := h.formatTime(r.Time); s != "" {
			fields = append(fields, slog.String(slog.TimeKey, s))
		}
	}

	fields = append(fields, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			fields = append(fields,
				slog.String(slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.flatten(h.prefix, a)...)

		return true
	})

	buf := new(bytes.Buffer)

	if h.json {
		buf.WriteString("{\n")

		for i, f := range fields {
			if i > 0 {
				buf.WriteString(",\n")
			}

			buf.WriteString("  ")
			buf.WriteString(h.pal.key.Render(f.Key))
			buf.WriteString(": ")
			h.writeValue(buf, f.Value)
		}

		buf.WriteString("\n}\n")
	} else {
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(h.pal.key.Render(f.Key))
			buf.WriteByte('=')
			h.writeValue(buf, f.Value)
		}

		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append([]slog.Attr(nil), h.attrs...)

	for _, a := range attrs {
		c.attrs = append(c.attrs, h.flatten(h.prefix, a)...)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// flatten resolves a and expands groups into dotted keys.
func (h *prettyHandler) flatten(prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		if a.Equal(slog.Attr{}) {
			return nil
		}

		a.Key = prefix + a.Key

		return []slog.Attr{a}
	}

	group := a.Value.Group()
	if a.Key != "" {
		prefix += a.Key + "."
	}

	out := make([]slog.Attr, 0, len(group))
	for _, g := range group {
		out = append(out, h.flatten(prefix, g)...)
	}

	return out
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(h.pal.str.Render(v.String()))

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		buf.WriteString(h.pal.num.Render(v.String()))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(h.pal.yes.Render("true"))
		} else {
			buf.WriteString(h.pal.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(h.pal.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(h.pal.tim.Render(h.formatTime(v.Time())))

	case slog.KindAny:
		switch x := v.Any().(type) {
		case slog.Level:
			buf.WriteString(h.pal.levelStyle(x).Render(Level(x).String()))
		case nil:
			buf.WriteString(h.pal.null.Render("null"))
		case error:
			buf.WriteString(h.pal.no.Render(x.Error()))
		default:
			buf.WriteString(h.pal.str.Render(v.String()))
		}

	default:
		buf.WriteString(h.pal.str.Render(v.String()))
	}
}
