package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
)

func TestError_Is(t *testing.T) {
	err := ErrReadSource.
		With(slog.String("source", "x")).
		Wrap(fs.ErrNotExist)

	if !errors.Is(err, ErrReadSource) {
		t.Error("derived error should match its sentinel")
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("derived error should match its cause")
	}

	if errors.Is(err, ErrParamNotFound) {
		t.Error("derived error matched an unrelated sentinel")
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message", NewError("boom"), "boom"},
		{"wrapped", NewError("boom").Wrap(errors.New("cause")), "boom: cause"},
		{"cause only", NewError("").Wrap(errors.New("cause")), "cause"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_WithDoesNotShareAttrs(t *testing.T) {
	base := NewError("base").With(slog.Int("a", 1))

	x := base.With(slog.Int("x", 1))
	y := base.With(slog.Int("y", 2))

	if len(base.Attrs()) != 1 {
		t.Errorf("base attrs = %v", base.Attrs())
	}

	if x.Attrs()[1].Key != "x" || y.Attrs()[1].Key != "y" {
		t.Errorf("attrs overwritten: x=%v y=%v", x.Attrs(), y.Attrs())
	}
}

func TestError_LogValue(t *testing.T) {
	var sb strings.Builder

	logger := slog.New(slog.NewTextHandler(&sb, nil))
	logger.Error("failed", slog.Any("err",
		ErrParamNotFound.With(slog.String("param", "root")),
	))

	for _, want := range []string{`err.error="parameter not found"`, "err.param=root"} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, sb.String())
		}
	}
}
