package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/SyntaApp/app/core"
)

// ErrNoHandler is returned by LocalTransport.Invoke when no handler is
// installed for the requested channel.
var ErrNoHandler = fmt.Errorf("no handler installed for channel")

// LocalTransport is the in-process transport for the single host↔front-end
// pair. The host side installs handlers through the dispatcher; the front-end
// side (or a test) calls Invoke with a channel address.
type LocalTransport struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewLocalTransport constructs an empty local transport.
func NewLocalTransport() *LocalTransport {
	return &LocalTransport{handlers: make(map[string]Handler)}
}

// Handle installs the handler for a channel, replacing any previous one.
func (t *LocalTransport) Handle(channel string, h Handler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers[channel] = h
}

// RemoveHandler uninstalls the handler for a channel.
func (t *LocalTransport) RemoveHandler(channel string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.handlers, channel)
}

// Invoke dispatches a call to the handler bound to channel. The returned
// error only ever signals a missing handler; action failures arrive as a
// structured Result.
func (t *LocalTransport) Invoke(ctx context.Context, channel string, args ...any) (*core.Result, error) {
	t.mu.RLock()
	h, ok := t.handlers[channel]
	t.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoHandler, channel)
	}
	return h(ctx, args...), nil
}

// Channels returns the currently addressable channel strings.
func (t *LocalTransport) Channels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.handlers))
	for ch := range t.handlers {
		out = append(out, ch)
	}
	return out
}
