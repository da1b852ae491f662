package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func decode(t *testing.T, line []byte) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", line, err)
	}

	return m
}

func TestMake_Defaults(t *testing.T) {
	l := Make(&bytes.Buffer{})

	if l.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", l.Format(), DefaultFormat)
	}

	if l.cfg.caller != DefaultCaller || l.cfg.pretty != DefaultPretty {
		t.Errorf("unexpected caller/pretty defaults: %+v", l.cfg)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	tests := []struct {
		level Level
		emit  func(Logger)
		want  bool
	}{
		{LevelInfo, func(l Logger) { l.Debug("m") }, false},
		{LevelInfo, func(l Logger) { l.Info("m") }, true},
		{LevelDebug, func(l Logger) { l.Debug("m") }, true},
		{LevelDebug, func(l Logger) { l.Trace("m") }, false},
		{LevelTrace, func(l Logger) { l.Trace("m") }, true},
		{LevelError, func(l Logger) { l.Warn("m") }, false},
		{LevelError, func(l Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		tt.emit(Make(&buf, WithLevel(tt.level)))

		if got := buf.Len() > 0; got != tt.want {
			t.Errorf("level %v: wrote=%v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelTrace), WithTimeLayout("none"))
	l.Trace("scanned", slog.Int("args", 3))

	m := decode(t, buf.Bytes())

	if m["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", m["level"])
	}

	if m["msg"] != "scanned" || m["args"] != float64(3) {
		t.Errorf("unexpected record: %v", m)
	}

	if _, ok := m["time"]; ok {
		t.Error("time should be omitted with layout none")
	}
}

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatText), WithTimeLayout("kitchen"))
	l.Info("hello", slog.String("who", "world"))

	out := buf.String()
	for _, want := range []string{"level=INFO", "msg=hello", "who=world", "time="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}

	if !strings.Contains(out, "AM") && !strings.Contains(out, "PM") {
		t.Errorf("time not in kitchen layout: %s", out)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true), WithTimeLayout("")).Info("here")

	m := decode(t, buf.Bytes())

	src, ok := m["source"].(map[string]any)
	if !ok {
		t.Fatalf("source missing: %v", m)
	}

	if file, _ := src["file"].(string); !strings.HasSuffix(file, "log_test.go") {
		t.Errorf("source file = %q, want log_test.go", file)
	}
}

func TestLogger_WithPersistsAcrossWrap(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithTimeLayout("none")).With(slog.String("component", "scan"))
	l = l.Wrap(WithLevel(LevelDebug))
	l.Debug("wrapped")

	m := decode(t, buf.Bytes())
	if m["component"] != "scan" {
		t.Errorf("attribute lost after Wrap: %v", m)
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Info("ignored")
	l = l.Wrap(WithLevel(LevelDebug))

	if l.Logger != nil {
		t.Error("wrapping a zero Logger should stay zero")
	}

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Error("zero Logger should report defaults")
	}
}

func TestLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf,
		WithPretty(true),
		WithFormat(FormatText),
		WithTimeLayout("none"),
	)
	l.With(slog.String("src", "/proc/cmdline")).
		Info("parsed", slog.Group("arg", slog.String("name", "ro")), slog.Bool("ok", true))

	out := buf.String()

	// Output is not a terminal, so no escape sequences are written.
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected ANSI escape in %q", out)
	}

	for _, want := range []string{"level=info", "msg=parsed", "src=/proc/cmdline", "arg.name=ro", "ok=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestLogger_PrettyJSON(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithPretty(true), WithTimeLayout("none")).
		Warn("careful", slog.Int("n", 7))

	out := buf.String()
	if !strings.HasPrefix(out, "{\n") || !strings.HasSuffix(out, "\n}\n") {
		t.Errorf("unexpected pretty JSON layout: %q", out)
	}

	for _, want := range []string{"  level: warn", "  msg: careful", "  n: 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace":  LevelTrace,
		"TRACE":  LevelTrace,
		"debug":  LevelDebug,
		" info ": LevelInfo,
		"WARN":   LevelWarn,
		"error":  LevelError,
		"warn+2": Level(slog.LevelWarn + 2),
		"bogus":  DefaultLevel,
		"":       DefaultLevel,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"json":  FormatJSON,
		"TEXT":  FormatText,
		" text": FormatText,
		"xml":   DefaultFormat,
	}

	for in, want := range tests {
		if got := ParseFormat(in); got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelsAndFormats(t *testing.T) {
	if got := slices.Collect(Levels()); !slices.Equal(got, []string{"trace", "debug", "info", "warn", "error"}) {
		t.Errorf("Levels() = %v", got)
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"json", "text"}) {
		t.Errorf("Formats() = %v", got)
	}

	if got := Format(9).String(); got != "Format(9)" {
		t.Errorf("Format(9).String() = %q", got)
	}
}
