package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/lkcmdline/log"
)

// List prints the arguments of the command line.
type List struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Output format (${enum})" short:"o"`
	Indent int    `default:"2"                          help:"Indent width of json and yaml output"`
	Where  string `help:"Only print arguments for which EXPR is true" placeholder:"EXPR" short:"w"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	c, err := load(ctx)
	if err != nil {
		return err
	}

	f, err := compileFilter(l.Where)
	if err != nil {
		return err
	}

	var records []record

	index := 0
	for arg := range c.All() {
		ok, err := f.match(index, arg)
		if err != nil {
			return err
		}

		if ok {
			records = append(records, makeRecord(index, arg))
		}

		index++
	}

	log.DebugContext(ctx, "list",
		slog.String("format", l.Format),
		slog.Int("total", index),
		slog.Int("selected", len(records)),
	)

	if records == nil && l.Format != formatText {
		records = []record{}
	}

	return render(ctx, outputFrom(ctx), l.Format, l.Indent, records)
}
