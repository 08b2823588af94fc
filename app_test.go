package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/internal/testutil"
	"github.com/SyntaApp/app/logging"
	"github.com/SyntaApp/app/namespace"
	"github.com/SyntaApp/app/service"
)

func newTestApp(t *testing.T, optFns ...func(o *Options)) (*App, *logging.MemoryTransport) {
	t.Helper()
	sink := logging.NewMemoryTransport()
	host := New(context.Background(), append([]func(o *Options){func(o *Options) {
		o.Registry = service.NewRegistry()
		o.LogTransports = []logging.Transport{sink}
	}}, optFns...)...)
	t.Cleanup(func() { host.Shutdown(context.Background()) })
	return host, sink
}

func TestApp_SettingsRoundTrip(t *testing.T) {
	host, _ := newTestApp(t)
	ctx := context.Background()

	// No prior stored data: an empty document.
	res, err := host.Invoke(ctx, "Settings:getUser")
	require.NoError(t, err)
	assert.Equal(t, core.StatusOK, res.Status)
	assert.Equal(t, map[string]any{}, res.Data)

	res, err = host.Invoke(ctx, "Settings:updateUser", map[string]any{"theme": "dark"})
	require.NoError(t, err)
	assert.Equal(t, core.StatusOK, res.Status)

	res, err = host.Invoke(ctx, "Settings:getUser")
	require.NoError(t, err)
	assert.Equal(t, core.StatusOK, res.Status)
	assert.Equal(t, map[string]any{"theme": "dark"}, res.Data)
}

func TestApp_BuiltinNamespacesArePingable(t *testing.T) {
	host, _ := newTestApp(t)
	ctx := context.Background()

	for _, channel := range []string{"Settings:ping", "System:ping"} {
		res, err := host.Invoke(ctx, channel)
		require.NoError(t, err)
		assert.Equal(t, core.StatusOK, res.Status)
		assert.Equal(t, namespace.PingResponse, res.Data)
	}
}

func TestApp_CustomNamespace(t *testing.T) {
	ns := namespace.New("Window", namespace.Actions{
		"focus": func(_ *core.CallContext, _ ...any) (*core.Result, error) {
			return core.OK(true), nil
		},
	})
	host, _ := newTestApp(t, func(o *Options) {
		o.Namespaces = []*namespace.Namespace{ns}
	})

	res, err := host.Invoke(context.Background(), "Window:focus")
	require.NoError(t, err)
	assert.Equal(t, true, res.Data)
}

func TestApp_DebugRecordsFollowDebugMode(t *testing.T) {
	host, sink := newTestApp(t)
	sink.Reset() // drop bootstrap records

	host.Logger().Debug("hidden")
	host.Logger().Info("shown")

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "shown", records[0].Message)

	debugHost, debugSink := newTestApp(t, func(o *Options) { o.Debug = true })
	debugSink.Reset()
	debugHost.Logger().Debug("now visible")
	assert.Len(t, debugSink.Records(), 1)
}

func TestApp_ShutdownDisposesInReverseOrder(t *testing.T) {
	registry := service.NewRegistry()
	journal := &testutil.LifecycleJournal{}
	registry.Add("store", journal.Service("store"))

	host := New(context.Background(), func(o *Options) {
		o.Registry = registry
		o.LogTransports = []logging.Transport{logging.NewMemoryTransport()}
	})

	require.Equal(t, []string{"store:init"}, journal.Entries())
	host.Shutdown(context.Background())
	assert.Equal(t, []string{"store:init", "store:dispose"}, journal.Entries())

	// The registry cleared and unsealed: reusable for another cycle.
	assert.Empty(t, registry.Keys())
}

func TestApp_DispatcherIsAManagedService(t *testing.T) {
	host, _ := newTestApp(t)

	instance, err := host.Registry().Get(service.DispatcherKey)
	require.NoError(t, err)
	assert.Same(t, host.Dispatcher(), instance)
}
