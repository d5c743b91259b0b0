// Package logging builds the zerolog logger used by the hxui command.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New creates a leveled logger. The level defaults to info and the output
// to stderr; the console format writes human-readable lines.
func New(opts Options) (zerolog.Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	if opts.Format == FormatConsole {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		console.TimeFormat = time.Kitchen
		out = console
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
