// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level  string
	Pretty bool
	Writer io.Writer
}

// New returns a zerolog logger writing JSON, or console output when Pretty
// is set.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	output := writer
	if opts.Pretty {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
