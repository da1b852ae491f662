package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lkcmdline/cli/cmd"
	"github.com/ardnew/lkcmdline/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// CLI is the top-level command-line interface for lkcmdline.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source string `default:"${source}" help:"Command line file or '-' for stdin" placeholder:"FILE" short:"s"`
	Line   lineFlag `help:"Inspect LINE instead of reading FILE" placeholder:"LINE" short:"l"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	List cmd.List `cmd:"" default:"withargs" help:"List arguments"`
	Get  cmd.Get  `cmd:""                    help:"Print parameter values"`
	Has  cmd.Has  `cmd:""                    help:"Fail unless every parameter is present"`
	Init cmd.Init `cmd:""                    help:"Initialize configuration file"`
}

// lineFlag is a string flag that records whether it was given, so an
// explicitly empty --line selects an empty command line.
type lineFlag struct {
	text string
	set  bool
}

// Decode implements [kong.MapperValue].
func (l *lineFlag) Decode(ctx *kong.DecodeContext) error {
	var text string
	if err := ctx.Scan.PopValueInto("line", &text); err != nil {
		return err
	}

	*l = lineFlag{text: text, set: true}

	return nil
}

// Value returns the flag value and whether the flag was given.
func (l lineFlag) Value() (string, bool) { return l.text, l.set }

// Run executes the lkcmdline CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, os.Stdout, exit, filepath.Join(pkg.ConfigDir(), baseConfig), args)
}

func run(
	ctx context.Context,
	stdout io.Writer,
	exit func(code int),
	configFilePath string,
	args []string,
) error {
	var cli CLI

	vars := kong.Vars{
		"version":            pkg.Version,
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		cmd.SourceIdentifier: pkg.DefaultSource,
	}

	vars = vars.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars(vars))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before parsing so parse errors are logged with them.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(load, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	src := cmd.Source{Path: cli.Source}
	if line, ok := cli.Line.Value(); ok {
		src = cmd.Literal(line)
	}

	ctx = cmd.WithSource(ctx, src)
	ctx = cmd.WithOutput(ctx, stdout)

	// Finalize logger configuration with values that have no TextUnmarshaler.
	cli.Log.start(ctx)

	// No-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
