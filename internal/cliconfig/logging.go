package cliconfig

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/modbridge/pkg/log"
)

// Logger returns the CLI logger writing human-readable lines to w.
// An unparsable level falls back to info.
func Logger(w io.Writer, level string, noColor bool) zerolog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: noColor}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
