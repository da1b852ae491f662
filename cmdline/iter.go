package cmdline

// Iter scans arguments out of a command line buffer.
//
// An Iter only moves forward. Once [Iter.Next] reports false, every later
// call also reports false. Use [CmdLine.Iter] to start over.
type Iter struct {
	remain []byte
}

// Next returns the next argument and true, or false when the command line
// is exhausted.
//
// Whitespace separates arguments except inside double quotes. A quote that
// opens an argument is dropped from its raw span; any other quote is kept
// and toggles the quoted state. Quotes need not balance: an open quote
// simply extends to the end of the buffer.
func (it *Iter) Next() (Arg, bool) {
	rem := it.remain

	for len(rem) > 0 && isSpace(rem[0]) {
		rem = rem[1:]
	}

	if len(rem) == 0 {
		it.remain = nil

		return Arg{}, false
	}

	quoted := false
	if rem[0] == quote {
		rem = rem[1:]
		quoted = true
	}

	sep := -1

	for i, c := range rem {
		switch {
		case c == separator:
			if sep < 0 {
				sep = i
			}

		case c == quote:
			quoted = !quoted

		case !quoted && isSpace(c):
			it.remain = rem[i+1:]

			return Arg{raw: rem[:i], sep: sepOr(sep, i)}, true
		}
	}

	// The final argument ran into the end of the buffer.
	it.remain = nil

	return Arg{raw: rem, sep: sepOr(sep, len(rem))}, true
}

// Remaining returns the part of the buffer not yet scanned.
func (it *Iter) Remaining() []byte { return it.remain }

func sepOr(sep, n int) int {
	if sep < 0 {
		return n
	}

	return sep
}

// isSpace reports whether c is ASCII whitespace: space, horizontal tab,
// line feed, form feed, or carriage return. Vertical tab is not included.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}

	return false
}
