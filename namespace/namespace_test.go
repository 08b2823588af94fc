package namespace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyntaApp/app/core"
)

func echo(_ *core.CallContext, args ...any) (*core.Result, error) {
	return core.OK(args), nil
}

func TestNew_RegistersActionsAtConstruction(t *testing.T) {
	ns := New("Settings", Actions{
		"getUser":    echo,
		"updateUser": echo,
	})

	assert.Equal(t, "Settings", ns.Name())
	assert.Equal(t, []string{"getUser", "ping", "updateUser"}, ns.ActionNames())

	for _, action := range ns.ActionNames() {
		fn, ok := ns.Action(action)
		assert.True(t, ok, "action %q should be retrievable", action)
		assert.NotNil(t, fn)

		channel, ok := ns.Channel(action)
		require.True(t, ok)
		assert.Equal(t, "Settings:"+action, channel)
	}
}

func TestNamespace_UnregisteredActionIsUnreachable(t *testing.T) {
	ns := New("Settings", Actions{"getUser": echo})

	// An action that exists as code but was never registered is neither
	// retrievable nor addressable.
	fn, ok := ns.Action("updateUser")
	assert.False(t, ok)
	assert.Nil(t, fn)

	channel, ok := ns.Channel("updateUser")
	assert.False(t, ok)
	assert.Empty(t, channel)
}

func TestNamespace_BuiltinPing(t *testing.T) {
	ns := New("Window", nil)

	fn, ok := ns.Action(PingAction)
	require.True(t, ok)

	res, err := fn(core.NewCallContext(context.Background(), "call", "Window:ping", nil))
	require.NoError(t, err)
	assert.Equal(t, core.StatusOK, res.Status)
	assert.Equal(t, PingResponse, res.Data)

	channel, ok := ns.Channel(PingAction)
	require.True(t, ok)
	assert.Equal(t, "Window:ping", channel)
}

func TestNew_RegistrationErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{
			name:  "empty namespace name",
			build: func() { New("", nil) },
		},
		{
			name:  "empty action name",
			build: func() { New("Settings", Actions{"": echo}) },
		},
		{
			name:  "nil handler",
			build: func() { New("Settings", Actions{"getUser": nil}) },
		},
		{
			name:  "reserved ping",
			build: func() { New("Settings", Actions{"ping": echo}) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "construction must panic")
				_, ok := r.(*core.RegistrationError)
				assert.True(t, ok, "panic value should be *core.RegistrationError, got %T", r)
			}()
			tt.build()
		})
	}
}

func TestNamespace_ChannelIsCaseSensitive(t *testing.T) {
	ns := New("Settings", Actions{"getUser": echo})

	_, ok := ns.Channel("getuser")
	assert.False(t, ok)
}
