package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/logging"
	"github.com/SyntaApp/app/namespace"
)

// Handler is the transport-level callable installed for one channel. It
// always settles to a Result; failures inside the bound action are normalized
// before they reach the transport.
type Handler func(ctx context.Context, args ...any) *core.Result

// Transport is the wire boundary the dispatcher installs handlers on. The
// host process owns exactly one transport per front-end surface.
type Transport interface {
	// Handle installs the handler for a channel, replacing any previous one.
	Handle(channel string, h Handler)
	// RemoveHandler uninstalls the handler for a channel, if present.
	RemoveHandler(channel string)
}

// Dispatcher binds every action of a registered namespace to a transport
// handler addressed by its channel string. It is itself a managed service:
// the registry initializes it at startup and disposes it at shutdown, at
// which point all installed handlers are removed.
type Dispatcher struct {
	mu        sync.Mutex
	transport Transport
	logger    logging.Logger
	channels  map[string]string // channel -> owning namespace name
}

// New constructs a dispatcher bound to the given transport. A nil logger is
// substituted with a NoOpLogger; a logging.Scoped logger is derived into the
// "dispatch" scope for the dispatcher's own records.
func New(transport Transport, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	if scoped, ok := logger.(logging.Scoped); ok {
		logger = scoped.With("dispatch", nil)
	}
	return &Dispatcher{
		transport: transport,
		logger:    logger,
		channels:  make(map[string]string),
	}
}

// Register binds every action in the namespace's registry to its channel.
// Registration is last-write-wins per channel: any previously installed
// handler for the exact channel string is removed first, so repeating a
// registration during hot-reload cycles is idempotent and never stacks
// handlers.
func (d *Dispatcher) Register(ns *namespace.Namespace) {
	d.mu.Lock()
	defer d.mu.Unlock()
	nsLogger := d.logger
	if scoped, ok := d.logger.(logging.Scoped); ok {
		nsLogger = scoped.With(ns.Name(), nil)
	}
	for _, action := range ns.ActionNames() {
		channel, ok := ns.Channel(action)
		if !ok {
			continue
		}
		fn, ok := ns.Action(action)
		if !ok {
			continue
		}
		if prev, taken := d.channels[channel]; taken && prev != ns.Name() {
			d.logger.Warn("channel re-registered by another namespace", map[string]any{
				"channel":  channel,
				"previous": prev,
				"next":     ns.Name(),
			})
		}
		d.transport.RemoveHandler(channel)
		d.transport.Handle(channel, d.bind(ns.Name(), channel, fn, nsLogger))
		d.channels[channel] = ns.Name()
	}
	d.logger.Debug("namespace registered", map[string]any{
		"namespace": ns.Name(),
		"actions":   len(ns.ActionNames()),
	})
}

// bind wraps one action into a transport handler. The handler builds the
// per-call context carrying a namespace-scoped logger, invokes the action,
// and normalizes every failure mode (returned error, panic, nil result) into
// a structured Result so nothing ever escapes to the transport layer.
func (d *Dispatcher) bind(nsName, channel string, fn namespace.ActionFunc, logger logging.Logger) Handler {
	return func(ctx context.Context, args ...any) (result *core.Result) {
		cc := core.NewCallContext(ctx, uuid.NewString(), channel, logger)
		defer func() {
			if r := recover(); r != nil {
				logger.Error("action panicked", map[string]any{
					"channel": channel,
					"call_id": cc.CallID,
					"recover": fmt.Sprint(r),
				})
				result = core.Failf(core.StatusInternalError, "%v", r)
			}
		}()
		res, err := fn(cc, args...)
		if err != nil {
			logger.Error("action failed", map[string]any{
				"channel":   channel,
				"namespace": nsName,
				"call_id":   cc.CallID,
				"error":     err.Error(),
			})
			return core.Fail(core.StatusInternalError, err.Error())
		}
		if res == nil {
			return core.OK(nil)
		}
		return res
	}
}

// Channels returns the channel strings currently bound, in no particular
// order.
func (d *Dispatcher) Channels() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.channels))
	for ch := range d.channels {
		out = append(out, ch)
	}
	return out
}

// Init marks the dispatcher ready. It satisfies the service registry's
// initializer hook.
func (d *Dispatcher) Init(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger.Info("dispatcher initialized", map[string]any{"channels": len(d.channels)})
	return nil
}

// Dispose removes every handler the dispatcher installed. It satisfies the
// service registry's disposer hook and runs during shutdown in reverse
// registration order with the other services.
func (d *Dispatcher) Dispose(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for channel := range d.channels {
		d.transport.RemoveHandler(channel)
		delete(d.channels, channel)
	}
	d.logger.Info("dispatcher disposed")
	return nil
}
