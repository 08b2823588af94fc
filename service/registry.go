package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/logging"
)

// Well-known service keys.
const (
	// LoggerKey is the registry key of the logging service. Lookups of this
	// key never fail: before the registry seals (or when no logger was
	// registered) a minimal fallback logger is handed out instead.
	LoggerKey = "Logger"
	// DispatcherKey is the registry key of the IPC dispatcher.
	DispatcherKey = "Dispatcher"
)

// Initializer is the optional init hook of a managed service, called once
// when the registry seals, in registration order.
type Initializer interface {
	Init(ctx context.Context) error
}

// Disposer is the optional dispose hook of a managed service, called once at
// shutdown, in reverse registration order.
type Disposer interface {
	Dispose(ctx context.Context) error
}

type entry struct {
	key      string
	instance any
}

// Registry is the single holder of the host's long-lived services. Services
// are added in dependency order, sealed and initialized by Init, and disposed
// in reverse order by Dispose. Lifecycle failures are isolated: a failing
// hook is logged per service and never aborts its siblings.
type Registry struct {
	mu      sync.Mutex
	entries []entry
	index   map[string]int
	sealed  bool
}

// NewRegistry constructs an empty, unsealed registry. Most code uses the
// process-wide Default registry; explicit construction exists for isolated
// test runs.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add registers a service under a unique key. Re-adding a key before sealing
// silently overwrites the previous instance while keeping its position in the
// initialization order. After the registry has sealed, Add warns and is a
// no-op.
func (r *Registry) Add(key string, instance any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		r.loggerLocked().Warn("service added after registry initialization, ignoring", map[string]any{
			"service": key,
		})
		return
	}
	if idx, ok := r.index[key]; ok {
		r.entries[idx].instance = instance
		return
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, entry{key: key, instance: instance})
}

// Get looks up a registered service. Before the registry seals every lookup
// fails with *core.NotReadyError, except LoggerKey: log calls must never fail
// due to registry state, so the logger lookup always yields a usable logger
// (the registered one once sealed, a minimal fallback otherwise). After
// sealing, unknown keys fail with *core.NotRegisteredError.
func (r *Registry) Get(key string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if key == LoggerKey {
		return r.loggerLocked(), nil
	}
	if !r.sealed {
		return nil, &core.NotReadyError{Key: key}
	}
	idx, ok := r.index[key]
	if !ok {
		return nil, &core.NotRegisteredError{Key: key}
	}
	return r.entries[idx].instance, nil
}

// Logger returns the logging service without the possibility of failure:
// the registered logger once the registry has sealed, otherwise the safe
// fallback.
func (r *Registry) Logger() logging.Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loggerLocked()
}

// loggerLocked resolves the usable logger; caller must hold the lock.
func (r *Registry) loggerLocked() logging.Logger {
	if r.sealed {
		if idx, ok := r.index[LoggerKey]; ok {
			if l, ok := r.entries[idx].instance.(logging.Logger); ok {
				return l
			}
		}
	}
	return logging.Fallback()
}

// Init seals the registry, blocking further Add calls, then runs the init
// hook of every registered service in registration order. Hook failures are
// fail-soft: each one is logged and collected, the remaining services still
// initialize. The joined error reports every failure; callers that want
// fail-fast semantics can inspect it and shut down.
func (r *Registry) Init(ctx context.Context) error {
	r.mu.Lock()
	if r.sealed {
		r.mu.Unlock()
		return fmt.Errorf("service registry already initialized")
	}
	r.sealed = true
	services := make([]entry, len(r.entries))
	copy(services, r.entries)
	r.mu.Unlock()

	logger := r.Logger()
	var errs []error
	for _, svc := range services {
		if err := runHook(ctx, svc, "init"); err != nil {
			logger.Error("service init failed", map[string]any{
				"service": svc.key,
				"error":   err.Error(),
			})
			errs = append(errs, err)
			continue
		}
		logger.Debug("service initialized", map[string]any{"service": svc.key})
	}
	return errors.Join(errs...)
}

// Dispose runs the dispose hook of every registered service in reverse
// registration order, isolating failures the same way Init does. Afterwards
// all entries are cleared and the registry unseals, so it can be reused for
// another startup cycle (isolated test runs rely on this).
func (r *Registry) Dispose(ctx context.Context) {
	r.mu.Lock()
	services := make([]entry, len(r.entries))
	copy(services, r.entries)
	logger := r.loggerLocked()
	r.mu.Unlock()

	for i := len(services) - 1; i >= 0; i-- {
		svc := services[i]
		if err := runHook(ctx, svc, "dispose"); err != nil {
			logger.Error("service dispose failed", map[string]any{
				"service": svc.key,
				"error":   err.Error(),
			})
		}
	}

	r.mu.Lock()
	r.entries = nil
	r.index = make(map[string]int)
	r.sealed = false
	r.mu.Unlock()
}

// Keys returns the registered service keys in registration order.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.key
	}
	return keys
}

// runHook invokes one lifecycle hook, containing panics so a defective
// service cannot take down its siblings.
func runHook(ctx context.Context, svc entry, hook string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &core.LifecycleError{Key: svc.key, Hook: hook, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	switch hook {
	case "init":
		if s, ok := svc.instance.(Initializer); ok {
			if hookErr := s.Init(ctx); hookErr != nil {
				return &core.LifecycleError{Key: svc.key, Hook: hook, Err: hookErr}
			}
		}
	case "dispose":
		if s, ok := svc.instance.(Disposer); ok {
			if hookErr := s.Dispose(ctx); hookErr != nil {
				return &core.LifecycleError{Key: svc.key, Hook: hook, Err: hookErr}
			}
		}
	}
	return nil
}

// Resolve looks up a service by key and asserts its concrete type.
func Resolve[T any](r *Registry, key string) (T, error) {
	var zero T
	instance, err := r.Get(key)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("service %q has type %T, not %T", key, instance, zero)
	}
	return typed, nil
}
