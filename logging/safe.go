package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SafeOptions qualifies a record emitted through the Safe fallback path.
type SafeOptions struct {
	Level   Level
	Scope   string
	Context map[string]any
	Err     error
}

// Safe writes a log line without depending on any initialized service. It is
// usable before the registry seals, during teardown, and in crash scenarios,
// and it never panics. The output degrades gracefully: a structured JSON line
// when the context serializes, an unstructured text line when it does not
// (cyclic references and the like), and a minimal raw write if even message
// formatting fails.
func Safe(msg string, opts *SafeOptions) {
	defer func() {
		if recover() != nil {
			// Last resort: raw write, errors intentionally ignored.
			_, _ = os.Stderr.Write([]byte(msg + "\n"))
		}
	}()
	if opts == nil {
		opts = &SafeOptions{Level: LevelInfo}
	}
	payload := map[string]any{
		"timestamp": time.Now().Format(time.RFC3339Nano),
		"level":     opts.Level.String(),
		"message":   msg,
	}
	if opts.Scope != "" {
		payload["scope"] = opts.Scope
	}
	if opts.Err != nil {
		payload["error"] = opts.Err.Error()
	}
	for k, v := range opts.Context {
		payload[k] = v
	}
	line, err := json.Marshal(payload)
	if err != nil {
		// Context could not be serialized; fall back to plain text.
		fmt.Fprintf(os.Stderr, "%s %s %s %s\n",
			time.Now().Format(time.RFC3339), opts.Level, opts.Scope, msg)
		return
	}
	_, _ = os.Stderr.Write(append(line, '\n'))
}

// fallbackLogger routes the Logger interface through the Safe path. The
// service registry hands it out whenever the real logging service is not
// available, so log calls never fail due to registry state.
type fallbackLogger struct {
	scope string
	base  map[string]any
}

// Fallback returns the minimal logger backed by Safe.
func Fallback() Logger {
	return &fallbackLogger{}
}

func (f *fallbackLogger) emit(level Level, msg string, context []map[string]any) {
	Safe(msg, &SafeOptions{
		Level:   level,
		Scope:   f.scope,
		Context: mergeContext(f.base, context...),
	})
}

func (f *fallbackLogger) Debug(msg string, context ...map[string]any) {
	f.emit(LevelDebug, msg, context)
}

func (f *fallbackLogger) Info(msg string, context ...map[string]any) {
	f.emit(LevelInfo, msg, context)
}

func (f *fallbackLogger) Warn(msg string, context ...map[string]any) {
	f.emit(LevelWarn, msg, context)
}

func (f *fallbackLogger) Error(msg string, context ...map[string]any) {
	f.emit(LevelError, msg, context)
}

func (f *fallbackLogger) With(scope string, baseContext map[string]any) Logger {
	return &fallbackLogger{scope: scope, base: mergeContext(f.base, baseContext)}
}
