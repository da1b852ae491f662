// Package cli contains the command line interface for lkcmdline.
//
// # Usage
//
//	lkcmdline [flags] [list] [--format=text|json|yaml] [--where=EXPR]
//	lkcmdline [flags] get [--all] NAME...
//	lkcmdline [flags] has NAME...
//	lkcmdline [flags] init [--force]
//
// The command line is read from /proc/cmdline unless --source names another
// file ("-" reads stdin) or --line supplies it literally.
//
// # Configuration
//
// Flag defaults are read from two files in the user configuration directory,
// each overriding the one before it:
//
//   - config.json, a JSON object keyed by flag name
//   - config, written in kernel command line syntax
//
// The second form is the one written by the init command:
//
//	log-level=debug log_format=text
//	format=json
//
// As on a kernel command line, '-' and '_' in names are interchangeable and a
// bare name sets a boolean flag. Flags given on the command line override
// both files.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (json, text)
//   - --log-time-layout: timestamp layout (RFC3339, kitchen, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorized output
//
// # Profiling Options
//
// Profiling flags exist only when built with the pprof build tag:
//
//   - --pprof-mode: enable profiling (cpu, heap, allocs, ...)
//   - --pprof-dir: profile output directory
//
// Build with:
//
//	go build -tags pprof .
package cli
