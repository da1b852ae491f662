package cmdline

import (
	"bytes"
	"fmt"
	"log/slog"
)

// separator divides a parameter name from its value.
const separator = '='

// Arg is a single argument of a command line.
//
// The raw span is kept exactly as it appeared on the command line, with any
// quoting intact. Name and value are derived on demand.
type Arg struct {
	raw []byte
	sep int // len(raw) when there is no value, else index of '='
}

// NewArg returns the argument held in raw.
//
// The separator is the first '=' byte in raw. Quote bytes are not skipped
// while searching, so a quoted '=' still separates name from value.
func NewArg(raw []byte) Arg {
	sep := bytes.IndexByte(raw, separator)
	if sep < 0 {
		sep = len(raw)
	}

	return NewArgAt(raw, sep)
}

// NewArgAt returns the argument held in raw with its separator at offset sep.
//
// NewArgAt panics unless sep == len(raw) or raw[sep] == '='.
func NewArgAt(raw []byte, sep int) Arg {
	if sep != len(raw) && (sep < 0 || sep > len(raw) || raw[sep] != separator) {
		panic(fmt.Sprintf(
			"cmdline: invalid separator offset %d in argument of length %d",
			sep, len(raw),
		))
	}

	return Arg{raw: raw, sep: sep}
}

// Raw returns the argument exactly as it appeared on the command line.
func (a Arg) Raw() []byte { return a.raw }

// HasValue reports whether the argument has a value, i.e. contains '='.
func (a Arg) HasValue() bool { return a.sep < len(a.raw) }

// Name returns the parameter name with quotes removed.
func (a Arg) Name() View { return Unquote(a.raw[:a.sep]) }

// Value returns the parameter value with quotes removed.
// The result is false if the argument has no '=' separator.
//
// An argument "name=" has a value of zero length.
func (a Arg) Value() (View, bool) {
	if !a.HasValue() {
		return View{}, false
	}

	return Unquote(a.raw[a.sep+1:]), true
}

// Matches reports whether the parameter name equals name, treating '-' and
// '_' as the same byte. The comparison is otherwise exact and covers the full
// length of both names.
func (a Arg) Matches(name []byte) bool {
	return matches(a.Name().Bytes(), name)
}

// MatchesString is like [Arg.Matches] but accepts the name as a string.
func (a Arg) MatchesString(name string) bool {
	return matches(a.Name().Bytes(), name)
}

func matches[S ~[]byte | ~string](have []byte, name S) bool {
	if len(have) != len(name) {
		return false
	}

	for i := range have {
		if canonical(have[i]) != canonical(name[i]) {
			return false
		}
	}

	return true
}

// String returns the raw argument.
func (a Arg) String() string { return string(a.raw) }

// LogValue implements [slog.LogValuer].
func (a Arg) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("name", a.Name().String())}

	if v, ok := a.Value(); ok {
		attrs = append(attrs, slog.String("value", v.String()))
	}

	return slog.GroupValue(attrs...)
}

func canonical(c byte) byte {
	if c == '-' {
		return '_'
	}

	return c
}
