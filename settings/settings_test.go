package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/namespace"
)

func callCtx() *core.CallContext {
	return core.NewCallContext(context.Background(), "call", "Settings:test", nil)
}

func invoke(t *testing.T, ns *namespace.Namespace, action string, args ...any) (*core.Result, error) {
	t.Helper()
	fn, ok := ns.Action(action)
	require.True(t, ok, "action %q must be registered", action)
	return fn(callCtx(), args...)
}

func TestSettings_GetUserEmpty(t *testing.T) {
	ns := New(nil)

	res, err := invoke(t, ns, "getUser")
	require.NoError(t, err)
	assert.Equal(t, core.StatusOK, res.Status)
	assert.Equal(t, map[string]any{}, res.Data)
}

func TestSettings_UpdateThenGet(t *testing.T) {
	ns := New(nil)

	res, err := invoke(t, ns, "updateUser", map[string]any{"theme": "dark"})
	require.NoError(t, err)
	assert.Equal(t, core.StatusOK, res.Status)
	assert.Equal(t, map[string]any{"theme": "dark"}, res.Data)

	res, err = invoke(t, ns, "updateUser", map[string]any{"fontSize": 14})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"theme": "dark", "fontSize": 14}, res.Data)

	res, err = invoke(t, ns, "getUser")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"theme": "dark", "fontSize": 14}, res.Data)
}

func TestSettings_UpdateUserValidatesPatch(t *testing.T) {
	ns := New(nil)

	res, err := invoke(t, ns, "updateUser")
	require.NoError(t, err)
	assert.Equal(t, core.StatusBadRequest, res.Status)

	res, err = invoke(t, ns, "updateUser", "not-an-object")
	require.NoError(t, err)
	assert.Equal(t, core.StatusBadRequest, res.Status)
}

// failingStore scripts backend failures.
type failingStore struct{}

func (failingStore) User() (map[string]any, error) {
	return nil, fmt.Errorf("settings file locked")
}

func (failingStore) UpdateUser(map[string]any) (map[string]any, error) {
	return nil, fmt.Errorf("settings file locked")
}

func TestSettings_StoreErrorsPropagateAsErrors(t *testing.T) {
	ns := New(failingStore{})

	_, err := invoke(t, ns, "getUser")
	assert.Error(t, err, "store failures surface as errors for the dispatcher to normalize")
}

func TestInMemoryStore_ClonesDocuments(t *testing.T) {
	store := NewInMemoryStore()

	doc, err := store.UpdateUser(map[string]any{"theme": "dark"})
	require.NoError(t, err)

	// Mutating the returned clone never touches internal state.
	doc["theme"] = "light"

	fresh, err := store.User()
	require.NoError(t, err)
	assert.Equal(t, "dark", fresh["theme"])
}
