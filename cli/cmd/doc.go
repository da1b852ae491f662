// Package cmd implements the lkcmdline subcommands.
//
// Each command is a kong command struct with a Run(context.Context) method.
// Commands obtain the command line to inspect from the [Source] stored in
// the context by [WithSource] and write results to the writer stored by
// [WithOutput] (stdout by default). Diagnostics go to the log package.
package cmd

var (
	// CacheIdentifier is the kong variable holding the cache directory path.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable holding the path of the
	// command line syntax configuration file.
	ConfigIdentifier = "config"

	// SourceIdentifier is the kong variable holding the default source path.
	SourceIdentifier = "source"
)
