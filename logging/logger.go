package logging

import (
	"time"
)

// Level is an ordered logging level.
type Level int

const (
	// LevelDebug is the debug logging level. Debug records are dropped
	// unless debug mode is active.
	LevelDebug Level = iota
	// LevelInfo is the informational logging level.
	LevelInfo
	// LevelWarn is the warning logging level.
	LevelWarn
	// LevelError is the error logging level.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a configuration string ("debug", "info", ...) to a
// Level, defaulting to LevelInfo for unknown values.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Record is the unit of delivery to transports: a single structured log
// entry. Records are ephemeral; this package never persists them.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	Scope   string
	Context map[string]any
}

// Transport is a pluggable sink receiving every record that passes the level
// filter. A transport's internal failure (including a panic) must not
// interrupt delivery to the remaining transports or propagate to the caller;
// HostLogger enforces the panic part, transports should handle the rest.
type Transport interface {
	Emit(rec Record)
}

// Logger is the minimal logging interface consumed throughout the host. The
// optional trailing context maps are merged, later maps winning on key
// collisions.
type Logger interface {
	Debug(msg string, context ...map[string]any)
	Info(msg string, context ...map[string]any)
	Warn(msg string, context ...map[string]any)
	Error(msg string, context ...map[string]any)
}

// Scoped extends Logger with derivation: With returns an independent logger
// that stamps scope and merges baseContext into every subsequent record
// without mutating the receiver. The dispatcher uses it to derive
// per-namespace loggers for call contexts when the injected logger supports
// derivation.
type Scoped interface {
	Logger
	With(scope string, baseContext map[string]any) Logger
}

// Config configures construction of a HostLogger.
type Config struct {
	// Debug enables delivery of LevelDebug records.
	Debug bool
	// Scope is the initial scope label stamped on records.
	Scope string
	// Transports is the ordered sink list. Defaults to a single JSON
	// transport on stdout when empty.
	Transports []Transport
}

// HostLogger is the concrete logging service. It is cheap to derive via With
// and safe for concurrent use: all fields are immutable after construction.
type HostLogger struct {
	debug      bool
	scope      string
	base       map[string]any
	transports []Transport
}

// New builds a HostLogger from a config (or defaults if nil).
func New(cfg *Config) *HostLogger {
	if cfg == nil {
		cfg = &Config{}
	}
	transports := cfg.Transports
	if len(transports) == 0 {
		transports = []Transport{NewSlogTransport("json", nil)}
	}
	return &HostLogger{
		debug:      cfg.Debug,
		scope:      cfg.Scope,
		base:       map[string]any{},
		transports: transports,
	}
}

// With returns a derived logger stamping scope and merging baseContext into
// every subsequent record. The receiver and any previously derived loggers
// are unaffected.
func (l *HostLogger) With(scope string, baseContext map[string]any) Logger {
	nl := *l
	nl.scope = scope
	nl.base = mergeContext(l.base, baseContext)
	return &nl
}

// Debug logs at debug level. Dropped unless debug mode is active.
func (l *HostLogger) Debug(msg string, context ...map[string]any) {
	l.log(LevelDebug, msg, context)
}

// Info logs at info level.
func (l *HostLogger) Info(msg string, context ...map[string]any) {
	l.log(LevelInfo, msg, context)
}

// Warn logs at warn level.
func (l *HostLogger) Warn(msg string, context ...map[string]any) {
	l.log(LevelWarn, msg, context)
}

// Error logs at error level.
func (l *HostLogger) Error(msg string, context ...map[string]any) {
	l.log(LevelError, msg, context)
}

func (l *HostLogger) log(level Level, msg string, context []map[string]any) {
	if level == LevelDebug && !l.debug {
		return
	}
	rec := Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Scope:   l.scope,
		Context: mergeContext(l.base, context...),
	}
	for _, t := range l.transports {
		emit(t, rec)
	}
}

// emit delivers rec to a single transport, containing any panic so one
// misbehaving sink cannot starve the others.
func emit(t Transport, rec Record) {
	defer func() {
		_ = recover()
	}()
	t.Emit(rec)
}

// mergeContext copies base and overlays the extra maps in order, later maps
// winning on key collisions. The inputs are never mutated.
func mergeContext(base map[string]any, extra ...map[string]any) map[string]any {
	merged := make(map[string]any, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for _, m := range extra {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// Span measures the duration of a named operation. Independent spans,
// including overlapping ones, each track their own start time.
type Span struct {
	logger  Logger
	name    string
	context map[string]any
	start   time.Time
}

// StartSpan begins a measured operation. Call End on the returned span to
// emit an INFO record "<name> completed" carrying the elapsed duration merged
// into context.
func (l *HostLogger) StartSpan(name string, context map[string]any) *Span {
	return &Span{logger: l, name: name, context: mergeContext(context), start: time.Now()}
}

// End completes the span and emits its record.
func (s *Span) End() {
	elapsed := time.Since(s.start)
	s.logger.Info(s.name+" completed", mergeContext(s.context, map[string]any{
		"duration_ms": elapsed.Milliseconds(),
	}))
}

// NoOpLogger discards all log records. Useful for testing or when logging is
// disabled.
type NoOpLogger struct{}

// Debug discards a debug record.
func (NoOpLogger) Debug(string, ...map[string]any) {}

// Info discards an info record.
func (NoOpLogger) Info(string, ...map[string]any) {}

// Warn discards a warn record.
func (NoOpLogger) Warn(string, ...map[string]any) {}

// Error discards an error record.
func (NoOpLogger) Error(string, ...map[string]any) {}
