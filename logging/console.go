package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ConsoleTransport renders records as colorized, human-readable lines via
// zerolog's ConsoleWriter. It is meant for the dev console of the host
// process; production runs typically use SlogTransport instead.
type ConsoleTransport struct {
	logger zerolog.Logger
}

// NewConsoleTransport builds a console transport writing to w. A nil writer
// defaults to stderr.
func NewConsoleTransport(w io.Writer) *ConsoleTransport {
	if w == nil {
		w = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return &ConsoleTransport{logger: zerolog.New(output)}
}

// Emit renders the record as one console line.
func (t *ConsoleTransport) Emit(rec Record) {
	ev := t.logger.WithLevel(zerologLevel(rec.Level)).Time(zerolog.TimestampFieldName, rec.Time)
	if rec.Scope != "" {
		ev = ev.Str("scope", rec.Scope)
	}
	ev.Fields(rec.Context).Msg(rec.Message)
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
