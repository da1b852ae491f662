package cmdline_test

import (
	"fmt"

	"github.com/ardnew/lkcmdline/cmdline"
)

func Example() {
	c := cmdline.FromString(`root=/dev/sda1 ro "quiet splash" init="/sbin/init --x"`)

	for arg := range c.All() {
		if value, ok := arg.Value(); ok {
			fmt.Printf("%s=%s\n", arg.Name(), value)
		} else {
			fmt.Println(arg.Name())
		}
	}
	// Output:
	// root=/dev/sda1
	// ro
	// quiet splash
	// init=/sbin/init --x
}

func ExampleCmdLine_Lookup() {
	c := cmdline.FromString("console=tty0 log_buf_len=1M console=ttyS0")

	if arg, ok := c.Lookup("log-buf-len"); ok {
		value, _ := arg.Value()
		fmt.Println(value)
	}

	if arg, ok := c.Lookup("console"); ok {
		value, _ := arg.Value()
		fmt.Println(value)
	}
	// Output:
	// 1M
	// ttyS0
}

func ExampleArg_Matches() {
	arg := cmdline.NewArg([]byte("rd.break-pre_mount"))

	fmt.Println(arg.Matches([]byte("rd.break_pre-mount")))
	fmt.Println(arg.Matches([]byte("rd.break")))
	// Output:
	// true
	// false
}

func ExampleUnquote() {
	v := cmdline.Unquote([]byte(`"acpi_osi=Windows 2020"`))

	fmt.Println(v, v.Owned())
	// Output:
	// acpi_osi=Windows 2020 true
}
