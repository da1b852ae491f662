package cmd

import (
	"log/slog"
	"strings"
)

// Error is a command failure carrying structured attributes for logging.
//
// Errors derived from a sentinel with [Error.With] or [Error.Wrap] still
// satisfy errors.Is against that sentinel.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns an Error with message msg.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	all := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	all = append(append(all, e.attrs...), attrs...)

	return &Error{msg: e.msg, err: e.err, attrs: all}
}

// Attrs returns the attributes attached to e.
func (e *Error) Attrs() []slog.Attr { return e.attrs }

var (
	ErrReadSource    = NewError("read command line")
	ErrParamNotFound = NewError("parameter not found")
	ErrCompileFilter = NewError("compile filter expression")
	ErrEvalFilter    = NewError("evaluate filter expression")
	ErrFilterResult  = NewError("filter expression must yield a boolean")
	ErrJSONMarshal   = NewError("marshal JSON")
	ErrYAMLMarshal   = NewError("marshal YAML")
	ErrUnknownFormat = NewError("unknown output format")
	ErrWriteOutput   = NewError("write output")
	ErrWriteConfig   = NewError("write configuration file")
	ErrFileExists    = NewError("file exists (use --force to overwrite)")
)
