// Package logging implements the host's structured, scoped logging service.
//
// Records carry {timestamp, level, message, scope, context} and are fanned
// out to an ordered list of pluggable transports (sinks). This package
// includes:
//
//   - Logger interface for dependency injection
//   - HostLogger with derived-scope loggers (With) and spans (StartSpan)
//   - SlogTransport (structured JSON/text via log/slog) and ConsoleTransport
//     (colorized dev output via zerolog)
//   - Safe, a dependency-free fallback path that never panics and degrades
//     from JSON to plain text to a raw stderr write
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// DEBUG records are delivered only when debug mode is active; all other
// levels always pass. A transport failure never interrupts delivery to the
// remaining transports or the caller.
package logging
