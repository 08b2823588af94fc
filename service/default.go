package service

import "sync"

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry, constructing it lazily on first
// access. Exactly one default registry exists per process; Dispose clears and
// unseals it in place rather than replacing it, so references held across a
// shutdown/startup cycle stay valid.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = NewRegistry()
	}
	return defaultRegistry
}
