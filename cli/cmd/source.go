package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/readahead"

	"github.com/ardnew/lkcmdline/cmdline"
	"github.com/ardnew/lkcmdline/log"
	"github.com/ardnew/lkcmdline/pkg"
)

// stdinSource is the path that selects standard input.
const stdinSource = "-"

// Source selects the command line to inspect.
type Source struct {
	// Path is a file holding the command line, or "-" for stdin.
	// Empty selects [pkg.DefaultSource].
	Path string
	// Line is a literal command line. When non-nil, Path is ignored, even
	// if the line is empty.
	Line *string
}

// Literal returns a Source for the literal command line line.
func Literal(line string) Source {
	return Source{Line: &line}
}

// Name returns a description of the source for diagnostics.
func (s Source) Name() string {
	switch {
	case s.Line != nil:
		return "literal"
	case s.Path == "":
		return pkg.DefaultSource
	default:
		return s.Path
	}
}

// Load reads the command line.
//
// The file is read in full; the returned CmdLine owns nothing and refers to
// the bytes read.
func (s Source) Load(ctx context.Context) (cmdline.CmdLine, error) {
	if s.Line != nil {
		return cmdline.FromString(*s.Line), nil
	}

	name := s.Name()

	var r io.Reader

	if name == stdinSource {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return cmdline.CmdLine{}, ErrReadSource.
				With(slog.String("source", name)).
				Wrap(err)
		}
		defer f.Close()

		r = f
	}

	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return cmdline.CmdLine{}, ErrReadSource.
			With(slog.String("source", name)).
			Wrap(err)
	}

	log.TraceContext(ctx, "read command line",
		slog.String("source", name),
		slog.Int("bytes", len(data)),
	)

	return cmdline.FromBytes(data), nil
}

// load reads the command line selected by the source in ctx.
func load(ctx context.Context) (cmdline.CmdLine, error) {
	src := sourceFrom(ctx)

	c, err := src.Load(ctx)
	if err != nil {
		return c, err
	}

	log.DebugContext(ctx, "loaded command line",
		slog.String("source", src.Name()),
		slog.Int("args", c.Len()),
	)

	return c, nil
}
