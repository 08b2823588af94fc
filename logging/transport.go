package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// SlogTransport delivers records through log/slog's structured handlers. It
// is the default sink for the host process, emitting JSON (or logfmt-style
// text) lines suitable for log collection. Level filtering happens upstream
// in HostLogger, so the underlying handler accepts everything.
type SlogTransport struct {
	logger *slog.Logger
}

// NewSlogTransport builds a transport writing the given format ("json" or
// "text") to w. A nil writer defaults to stdout.
func NewSlogTransport(format string, w io.Writer) *SlogTransport {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return &SlogTransport{logger: slog.New(handler)}
}

// Emit writes the record as a single structured line.
func (t *SlogTransport) Emit(rec Record) {
	attrs := make([]slog.Attr, 0, len(rec.Context)+2)
	if rec.Scope != "" {
		attrs = append(attrs, slog.String("scope", rec.Scope))
	}
	attrs = append(attrs, slog.Time("timestamp", rec.Time))
	for k, v := range rec.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	t.logger.LogAttrs(context.Background(), slogLevel(rec.Level), rec.Message, attrs...)
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MemoryTransport buffers records in memory. It exists for tests and for
// surfacing recent log lines in diagnostic snapshots.
type MemoryTransport struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryTransport constructs an empty buffering transport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{}
}

// Emit appends the record to the buffer.
func (t *MemoryTransport) Emit(rec Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, rec)
}

// Records returns a snapshot of everything emitted so far.
func (t *MemoryTransport) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Reset clears the buffer.
func (t *MemoryTransport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = nil
}
