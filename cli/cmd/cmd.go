package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

type (
	kongContextKey struct{}
	sourceKey      struct{}
	outputKey      struct{}
)

// WithContext returns a copy of ctx holding ktx.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongContextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(kongContextKey{}).(*kong.Context)

	return ktx
}

// WithSource returns a copy of ctx holding the command line source.
func WithSource(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, sourceKey{}, src)
}

// sourceFrom returns the source stored by [WithSource], or the zero Source
// (which reads the default source file).
func sourceFrom(ctx context.Context) Source {
	src, _ := ctx.Value(sourceKey{}).(Source)

	return src
}

// WithOutput returns a copy of ctx directing command output to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}
