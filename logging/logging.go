package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the application logger: console output on stderr with an
// app field. The monitor TUI owns the terminal, so its logger should
// write elsewhere (see NewWriter).
func New(app string) zerolog.Logger {
	return NewWriter(app, os.Stderr)
}

// NewWriter builds a logger writing to w.
func NewWriter(app string, w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}
