package ratelimit

import (
	"sync"
	"time"

	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/namespace"
)

// DefaultRejection is the rejection payload used when the config does not
// supply one.
var DefaultRejection = &core.Result{
	Status:  core.StatusTooManyRequests,
	Message: "rate limit exceeded",
}

// Config describes one guarded action.
type Config struct {
	// Window is the sliding-window length.
	Window time.Duration
	// Max is the number of calls allowed within the window. Zero or a
	// negative value means unlimited: the guard admits every call without
	// bookkeeping.
	Max int
	// Rejection is the payload template returned for rejected calls. The
	// guard augments a copy of it with the estimated retry-after duration.
	// Defaults to DefaultRejection when nil.
	Rejection *core.Result
}

// Guard is a sliding-window call limiter applied selectively to an individual
// action. Each Guard owns its own window, so two namespace instances, or two
// actions on the same instance, never share state.
type Guard struct {
	cfg   Config
	mu    sync.Mutex
	calls []time.Time
	now   func() time.Time // overridable in tests
}

// New constructs a guard for the given config.
func New(cfg Config) *Guard {
	if cfg.Rejection == nil {
		cfg.Rejection = DefaultRejection
	}
	return &Guard{cfg: cfg, now: time.Now}
}

// Wrap returns an action that enforces the guard before delegating to fn.
// On each call, timestamps older than the window are evicted lazily; if the
// surviving count has reached the maximum, the call is rejected synchronously
// without invoking fn and without consuming a window slot. The rejection
// payload carries retryAfter, the estimated wait (in milliseconds, rounded
// up) until the oldest surviving timestamp leaves the window.
func (g *Guard) Wrap(fn namespace.ActionFunc) namespace.ActionFunc {
	return func(cc *core.CallContext, args ...any) (*core.Result, error) {
		if rejection, ok := g.take(); !ok {
			return rejection, nil
		}
		return fn(cc, args...)
	}
}

// take records the call attempt against the window. It returns ok=true when
// the call may proceed, otherwise the augmented rejection payload.
func (g *Guard) take() (*core.Result, bool) {
	if g.cfg.Max <= 0 {
		return nil, true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	cutoff := now.Add(-g.cfg.Window)
	live := g.calls[:0]
	for _, t := range g.calls {
		if t.After(cutoff) {
			live = append(live, t)
		}
	}
	g.calls = live

	if len(g.calls) >= g.cfg.Max {
		retryAfter := g.cfg.Window - now.Sub(g.calls[0])
		rejection := *g.cfg.Rejection
		// Rounded up so a sub-millisecond remainder still reports a
		// positive wait.
		retryAfterMs := int64((retryAfter + time.Millisecond - 1) / time.Millisecond)
		data := map[string]any{"retryAfter": retryAfterMs}
		if template, ok := rejection.Data.(map[string]any); ok {
			for k, v := range template {
				if k != "retryAfter" {
					data[k] = v
				}
			}
		}
		rejection.Data = data
		return &rejection, false
	}

	g.calls = append(g.calls, now)
	return nil, true
}
