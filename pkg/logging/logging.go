// Package logging configures the zerolog logger used for diagnostics.
// Plugin output for the supervisor goes to stdout through pkg/output;
// everything logged here goes to stderr.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level.
// An empty level means "warn".
func New(w io.Writer, level string, color bool) (zerolog.Logger, error) {
	if level == "" {
		level = zerolog.WarnLevel.String()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
