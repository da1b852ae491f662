package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/lkcmdline/cmdline"
)

// record is the serialized form of one argument.
type record struct {
	Index int     `json:"index"           yaml:"index"`
	Name  string  `json:"name"            yaml:"name"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
	Raw   string  `json:"raw"             yaml:"raw"`
}

func makeRecord(index int, arg cmdline.Arg) record {
	r := record{
		Index: index,
		Name:  arg.Name().String(),
		Raw:   arg.String(),
	}

	if v, ok := arg.Value(); ok {
		s := v.String()
		r.Value = &s
	}

	return r
}

// Output formats accepted by [List].
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func render(
	ctx context.Context,
	w io.Writer,
	format string,
	indent int,
	records []record,
) error {
	var (
		data []byte
		err  error
	)

	indent = max(indent, 0)

	switch format {
	case formatText:
		data = renderText(w, records)

	case formatJSON:
		if data, err = json.MarshalIndent(
			records, "", strings.Repeat(" ", indent),
		); err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		data = append(data, '\n')

	case formatYAML:
		if data, err = yaml.MarshalContext(
			ctx, records, yaml.Indent(max(indent, 1)),
		); err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

	default:
		return ErrUnknownFormat.With(slog.String("format", format))
	}

	if _, err := w.Write(data); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// renderText writes one argument per line in command line syntax, quoting
// names and values that contain whitespace so the output parses back into
// the same arguments. A bare empty name is written as "".
func renderText(w io.Writer, records []record) []byte {
	r := lipgloss.NewRenderer(w)
	name := r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	value := r.NewStyle().Foreground(lipgloss.Color("3"))

	var buf bytes.Buffer

	for _, rec := range records {
		n := quoteSpace(rec.Name)
		if n == "" && rec.Value == nil {
			n = `""`
		}

		buf.WriteString(name.Render(n))

		if rec.Value != nil {
			buf.WriteByte('=')
			buf.WriteString(value.Render(quoteSpace(*rec.Value)))
		}

		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// quoteSpace wraps s in double quotes if it contains ASCII whitespace.
func quoteSpace(s string) string {
	if strings.ContainsAny(s, " \t\n\f\r") {
		return `"` + s + `"`
	}

	return s
}
