package cmdline

import "bytes"

// quote is the only quoting byte recognized on a kernel command line.
const quote = '"'

// View is an immutable byte sequence produced by [Unquote].
//
// A View either borrows the bytes it was derived from or owns a private copy
// with quote bytes elided. Callers must not modify the slice returned by
// [View.Bytes]; a borrowed View aliases the command line buffer.
type View struct {
	b     []byte
	owned bool
}

// Unquote returns b with every '"' byte removed.
//
// When b contains no quote bytes the returned View aliases b and nothing is
// allocated.
func Unquote(b []byte) View {
	i := bytes.IndexByte(b, quote)
	if i < 0 {
		return View{b: b}
	}

	out := make([]byte, 0, len(b)-1)

	for i >= 0 {
		out = append(out, b[:i]...)
		b = b[i+1:]
		i = bytes.IndexByte(b, quote)
	}

	return View{b: append(out, b...), owned: true}
}

// Bytes returns the view's contents.
func (v View) Bytes() []byte { return v.b }

// String returns a copy of the view's contents as a string.
func (v View) String() string { return string(v.b) }

// Len returns the view's length in bytes.
func (v View) Len() int { return len(v.b) }

// Owned reports whether the view holds its own buffer rather than borrowing
// the bytes it was derived from.
func (v View) Owned() bool { return v.owned }

// Equal reports whether the view's contents equal b.
func (v View) Equal(b []byte) bool { return bytes.Equal(v.b, b) }
