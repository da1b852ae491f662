package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/lkcmdline/log"
	"github.com/ardnew/lkcmdline/profile"
)

// configMode is the permission mode of a written configuration file.
const configMode os.FileMode = 0o600

// configDirMode is the permission mode of a created configuration directory.
const configDirMode os.FileMode = 0o700

// Init writes a configuration file holding the current flag values.
//
// The file uses kernel command line syntax with one parameter per line:
//
//	log-level=info
//	log-format=json
//	source=/proc/cmdline
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	if err := os.MkdirAll(filepath.Dir(confPath), configDirMode); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	if err := os.WriteFile(confPath, i.build(ctx), configMode); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// build renders the global flags with a non-empty value.
func (i *Init) build(ctx context.Context) []byte {
	ktx := kongContextFrom(ctx)

	ignore := []string{"help", "version", profile.Tag}

	var buf bytes.Buffer

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val, ok := formatFlag(ktx.FlagValue(flag))
		if !ok {
			continue
		}

		if strings.ContainsRune(val, quote) {
			log.WarnContext(ctx, "skipping flag with quote in value",
				slog.String("flag", flag.Name),
			)

			continue
		}

		buf.WriteString(flag.Name)
		buf.WriteByte('=')
		buf.WriteString(quoteSpace(val))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// quote is the quoting byte of command line syntax. Values containing it
// cannot be written since the syntax has no escape.
const quote = '"'

// optional is a flag value that records whether it was given.
type optional interface {
	Value() (string, bool)
}

// formatFlag returns the configuration text of a flag value, reporting false
// for values that should not be written.
func formatFlag(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false

	case bool:
		return strconv.FormatBool(v), true

	case string:
		return v, v != ""

	case []string:
		return strings.Join(v, ","), len(v) > 0

	case optional:
		return v.Value()

	default:
		return fmt.Sprint(v), true
	}
}
