// Package app provides the high-level façade over the Synta host's dispatch
// core: the service registry, the structured logging service, the IPC
// dispatcher and the built-in namespaces. Most host code interacts with this
// package by:
//  1. Creating an App via New() (optionally overriding transports, stores and
//     the service registry)
//  2. Registering additional namespaces at bootstrap
//  3. Letting front-end surfaces invoke "<Namespace>:<action>" channels over
//     the transport
//
// The façade wires services into the registry in dependency order, seals and
// initializes it, and tears everything down in reverse order on Shutdown. All
// defaults are safe for local development and testing.
package app

import (
	"context"
	"fmt"

	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/dispatch"
	"github.com/SyntaApp/app/logging"
	"github.com/SyntaApp/app/namespace"
	"github.com/SyntaApp/app/service"
	"github.com/SyntaApp/app/settings"
	"github.com/SyntaApp/app/system"
)

// Options configures the App instance.
type Options struct {
	// Debug enables delivery of debug-level log records.
	Debug bool

	// Version is reported by the System namespace.
	Version string

	// LogTransports is the ordered sink list for the logging service.
	// Defaults to a single JSON transport on stdout.
	LogTransports []logging.Transport

	// Transport carries calls between the host and its front-end surface.
	// Defaults to an in-process LocalTransport.
	Transport dispatch.Transport

	// Registry receives the long-lived services. Defaults to the
	// process-wide registry; tests supply an isolated one.
	Registry *service.Registry

	// SettingsStore backs the Settings namespace. Defaults to an in-memory
	// implementation.
	SettingsStore settings.Store

	// Namespaces are additional capability bundles registered at bootstrap,
	// after the built-in Settings and System namespaces.
	Namespaces []*namespace.Namespace
}

// App aggregates the initialized dispatch core of one host process.
type App struct {
	registry   *service.Registry
	logger     *logging.HostLogger
	dispatcher *dispatch.Dispatcher
	transport  dispatch.Transport
}

// New assembles and initializes the dispatch core. Services enter the
// registry in dependency order (logger first, dispatcher second), namespaces
// register their actions with the dispatcher as they are constructed, and the
// registry is sealed and initialized before New returns. Lifecycle hook
// failures are fail-soft: they are logged and do not abort the remaining
// startup sequence.
func New(ctx context.Context, optFns ...func(o *Options)) *App {
	opts := Options{
		Version: "0.0.0-dev",
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := logging.New(&logging.Config{
		Debug:      opts.Debug,
		Scope:      "host",
		Transports: opts.LogTransports,
	})

	transport := opts.Transport
	if transport == nil {
		transport = dispatch.NewLocalTransport()
	}

	registry := opts.Registry
	if registry == nil {
		registry = service.Default()
	}

	dispatcher := dispatch.New(transport, logger)

	registry.Add(service.LoggerKey, logging.Logger(logger))
	registry.Add(service.DispatcherKey, dispatcher)

	dispatcher.Register(settings.New(opts.SettingsStore))
	dispatcher.Register(system.New(opts.Version))
	for _, ns := range opts.Namespaces {
		dispatcher.Register(ns)
	}

	if err := registry.Init(ctx); err != nil {
		logger.Warn("startup continued past service init failures", map[string]any{
			"error": err.Error(),
		})
	}

	return &App{
		registry:   registry,
		logger:     logger,
		dispatcher: dispatcher,
		transport:  transport,
	}
}

// Invoke dispatches a call over the local transport. It returns an error when
// the configured transport is not local or the channel has no handler; action
// failures arrive as a structured Result instead.
func (a *App) Invoke(ctx context.Context, channel string, args ...any) (*core.Result, error) {
	local, ok := a.transport.(*dispatch.LocalTransport)
	if !ok {
		return nil, fmt.Errorf("configured transport %T does not support local invocation", a.transport)
	}
	return local.Invoke(ctx, channel, args...)
}

// Register binds an additional namespace's actions to the transport.
// Re-registering a namespace is idempotent per channel (last write wins).
func (a *App) Register(ns *namespace.Namespace) {
	a.dispatcher.Register(ns)
}

// Logger returns the host logging service.
func (a *App) Logger() *logging.HostLogger { return a.logger }

// Dispatcher returns the managed IPC dispatcher.
func (a *App) Dispatcher() *dispatch.Dispatcher { return a.dispatcher }

// Registry returns the service registry owning this app's lifecycle.
func (a *App) Registry() *service.Registry { return a.registry }

// Shutdown disposes every managed service in reverse registration order and
// leaves the registry reusable for another startup cycle.
func (a *App) Shutdown(ctx context.Context) {
	a.registry.Dispose(ctx)
}
