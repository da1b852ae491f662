// Package cmdline parses Linux kernel style command lines such as the
// contents of /proc/cmdline.
//
// A command line is a sequence of whitespace separated arguments. Each
// argument is either a bare name or a name=value pair. Double quotes let an
// argument contain whitespace; there is no escape character.
//
//	root=/dev/sda1 ro quiet "foo=bar baz" init=/sbin/init
//
// # Parsing
//
// Parsing is lazy and does not copy the command line. [CmdLine.All] and
// [CmdLine.Iter] scan one argument at a time:
//
//	c := cmdline.FromString("console=ttyS0,115200 ro")
//	for arg := range c.All() {
//	    name := arg.Name()
//	    if value, ok := arg.Value(); ok {
//	        fmt.Printf("%s = %s\n", name, value)
//	    }
//	}
//
// [Arg.Name] and [Arg.Value] strip quote bytes. The result is a [View] that
// borrows from the command line unless quotes had to be removed.
//
// # Matching
//
// The kernel treats '-' and '_' in parameter names as the same character.
// [Arg.Matches] and [CmdLine.Lookup] follow that rule:
//
//	c := cmdline.FromString("log_buf_len=1M")
//	arg, ok := c.Lookup("log-buf-len") // ok == true
//
// # Safety
//
// All values in this package are immutable and may be shared between
// goroutines. An [Iter] is a cursor and belongs to one goroutine.
package cmdline
