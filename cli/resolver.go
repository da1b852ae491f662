package cli

import (
	"io"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lkcmdline/cmdline"
)

// load is a [kong.ConfigurationLoader] for configuration files written in
// kernel command line syntax:
//
//	log-level=debug log_pretty format=yaml
//
// Each parameter supplies the value of the flag it matches, with '-' and '_'
// treated alike. A parameter without a value resolves to "true". When a
// parameter repeats, the last occurrence wins.
func load(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return config{line: cmdline.FromBytes(data)}, nil
}

// config implements [kong.Resolver] over a parsed command line.
type config struct {
	line cmdline.CmdLine
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if flag.Name == "help" {
		return nil, nil
	}

	arg, ok := c.line.Lookup(flag.Name)
	if !ok {
		return nil, nil
	}

	if v, ok := arg.Value(); ok {
		return v.String(), nil
	}

	return "true", nil
}
