package system

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/namespace"
)

func invoke(t *testing.T, ns *namespace.Namespace, action string, args ...any) *core.Result {
	t.Helper()
	fn, ok := ns.Action(action)
	require.True(t, ok, "action %q must be registered", action)
	res, err := fn(core.NewCallContext(context.Background(), "call", Name+":"+action, nil), args...)
	require.NoError(t, err)
	return res
}

func TestSystem_Version(t *testing.T) {
	ns := New("1.2.3")

	res := invoke(t, ns, "version")
	assert.Equal(t, core.StatusOK, res.Status)
	assert.Equal(t, "1.2.3", res.Data)
}

func TestSystem_Platform(t *testing.T) {
	ns := New("1.2.3")

	res := invoke(t, ns, "platform")
	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, runtime.GOOS, data["os"])
	assert.Equal(t, runtime.GOARCH, data["arch"])
}

func TestSystem_Uptime(t *testing.T) {
	ns := New("1.2.3")

	res := invoke(t, ns, "uptime")
	uptime, ok := res.Data.(int64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, uptime, int64(0))
}

func TestSystem_ReportIssueIsRateLimited(t *testing.T) {
	ns := New("1.2.3")

	for i := 0; i < 3; i++ {
		res := invoke(t, ns, "reportIssue", "it is broken")
		assert.Equal(t, core.StatusOK, res.Status)
	}

	res := invoke(t, ns, "reportIssue", "still broken")
	assert.Equal(t, core.StatusTooManyRequests, res.Status)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "retryAfter")
}

func TestSystem_SeparateInstancesDoNotShareWindows(t *testing.T) {
	first := New("1.2.3")
	second := New("1.2.3")

	for i := 0; i < 3; i++ {
		invoke(t, first, "reportIssue")
	}
	res := invoke(t, first, "reportIssue")
	require.Equal(t, core.StatusTooManyRequests, res.Status)

	res = invoke(t, second, "reportIssue")
	assert.Equal(t, core.StatusOK, res.Status, "windows are scoped per instance")
}
