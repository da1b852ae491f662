package cmdline

import (
	"iter"
	"unsafe"
)

// CmdLine is a read-only view of a kernel command line.
//
// CmdLine never copies the buffer it was created from. The buffer must not
// be modified while the CmdLine or any [Arg] or [View] derived from it is
// in use.
type CmdLine struct {
	data []byte
}

// FromBytes returns a CmdLine over b.
func FromBytes(b []byte) CmdLine {
	return CmdLine{data: b}
}

// FromString returns a CmdLine over the bytes of s without copying them.
func FromString(s string) CmdLine {
	// The aliased bytes are never written.
	return CmdLine{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Iter returns an [Iter] positioned at the start of the command line.
func (c CmdLine) Iter() *Iter {
	return &Iter{remain: c.data}
}

// All returns an iterator over every argument in order.
func (c CmdLine) All() iter.Seq[Arg] {
	return func(yield func(Arg) bool) {
		it := c.Iter()

		for {
			arg, ok := it.Next()
			if !ok || !yield(arg) {
				return
			}
		}
	}
}

// Lookup returns the last argument whose name matches name.
// Later parameters on a kernel command line override earlier ones.
func (c CmdLine) Lookup(name string) (Arg, bool) {
	var (
		last  Arg
		found bool
	)

	for arg := range c.LookupAll(name) {
		last, found = arg, true
	}

	return last, found
}

// LookupAll returns an iterator over every argument whose name matches name,
// in command line order.
func (c CmdLine) LookupAll(name string) iter.Seq[Arg] {
	return func(yield func(Arg) bool) {
		for arg := range c.All() {
			if arg.MatchesString(name) && !yield(arg) {
				return
			}
		}
	}
}

// Names returns an iterator over the unquoted name of every argument.
func (c CmdLine) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for arg := range c.All() {
			if !yield(arg.Name().String()) {
				return
			}
		}
	}
}

// Len returns the number of arguments.
func (c CmdLine) Len() int {
	n := 0
	for range c.All() {
		n++
	}

	return n
}

// Bytes returns the underlying buffer.
func (c CmdLine) Bytes() []byte { return c.data }

// String returns a copy of the underlying buffer as a string.
func (c CmdLine) String() string { return string(c.data) }
