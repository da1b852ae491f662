//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of lkcmdline embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It appears in help output and is the fallback
	// for configuration paths.
	Name = "lkcmdline"

	// Description is a one-line summary used in help output.
	Description = "Inspect Linux kernel command line parameters"

	// DefaultSource is the file read when no source is given.
	DefaultSource = "/proc/cmdline"
)
