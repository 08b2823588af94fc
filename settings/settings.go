package settings

import (
	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/namespace"
)

// Name is the namespace identity, and therefore the channel prefix, of the
// settings capability bundle.
const Name = "Settings"

// New builds the Settings namespace over the given store. The action table is
// fixed at construction:
//
//	Settings:getUser    — returns the stored user settings document
//	Settings:updateUser — merges a patch object into the document
//	Settings:ping       — built-in liveness probe
//
// A nil store defaults to an in-memory implementation.
func New(store Store) *namespace.Namespace {
	if store == nil {
		store = NewInMemoryStore()
	}
	h := &handlers{store: store}
	return namespace.New(Name, namespace.Actions{
		"getUser":    h.getUser,
		"updateUser": h.updateUser,
	})
}

type handlers struct {
	store Store
}

func (h *handlers) getUser(cc *core.CallContext, _ ...any) (*core.Result, error) {
	user, err := h.store.User()
	if err != nil {
		return nil, err
	}
	cc.Logger.Debug("user settings read", map[string]any{"call_id": cc.CallID})
	return core.OK(user), nil
}

// updateUser expects a single object argument: the patch to merge. Argument
// validation happens here, not in the dispatcher.
func (h *handlers) updateUser(cc *core.CallContext, args ...any) (*core.Result, error) {
	if len(args) == 0 {
		return core.Fail(core.StatusBadRequest, "missing settings patch"), nil
	}
	patch, ok := args[0].(map[string]any)
	if !ok {
		return core.Failf(core.StatusBadRequest, "settings patch must be an object, got %T", args[0]), nil
	}
	user, err := h.store.UpdateUser(patch)
	if err != nil {
		return nil, err
	}
	cc.Logger.Info("user settings updated", map[string]any{
		"call_id": cc.CallID,
		"keys":    len(patch),
	})
	return core.OK(user), nil
}
