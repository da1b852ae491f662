package cmd

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/ardnew/lkcmdline/cmdline"
	"github.com/ardnew/lkcmdline/log"
)

// Get prints the values of named parameters.
type Get struct {
	All   bool     `help:"Print every occurrence, not only the last" short:"a"`
	Names []string `arg:"" help:"Parameter names ('-' and '_' are interchangeable)" name:"name"`
}

// Run executes the get command.
//
// Each parameter is printed on its own line. A parameter given without a
// value prints an empty line. Nothing is printed unless every name is found.
func (g *Get) Run(ctx context.Context) error {
	c, err := load(ctx)
	if err != nil {
		return err
	}

	if err := require(ctx, c, g.Names); err != nil {
		return err
	}

	var buf bytes.Buffer

	for _, name := range g.Names {
		if g.All {
			for arg := range c.LookupAll(name) {
				writeValue(&buf, arg)
			}

			continue
		}

		arg, _ := c.Lookup(name)
		writeValue(&buf, arg)
	}

	if _, err := outputFrom(ctx).Write(buf.Bytes()); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

func writeValue(buf *bytes.Buffer, arg cmdline.Arg) {
	if v, ok := arg.Value(); ok {
		buf.Write(v.Bytes())
	}

	buf.WriteByte('\n')
}

// Has reports through its exit status whether named parameters are present.
type Has struct {
	Names []string `arg:"" help:"Parameter names ('-' and '_' are interchangeable)" name:"name"`
}

// Run executes the has command.
func (h *Has) Run(ctx context.Context) error {
	c, err := load(ctx)
	if err != nil {
		return err
	}

	return require(ctx, c, h.Names)
}

// require returns [ErrParamNotFound] for the first name not present in c.
func require(ctx context.Context, c cmdline.CmdLine, names []string) error {
	for _, name := range names {
		if arg, ok := c.Lookup(name); ok {
			log.TraceContext(ctx, "found parameter", slog.Any("arg", arg))

			continue
		}

		attrs := []slog.Attr{slog.String("param", name)}
		if s := suggest(name, c); len(s) > 0 {
			attrs = append(attrs, slog.Any("suggestions", s))
		}

		return ErrParamNotFound.With(attrs...)
	}

	return nil
}
