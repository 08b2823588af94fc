package namespace

import (
	"sort"

	"github.com/SyntaApp/app/core"
)

// PingResponse is the fixed liveness value returned by the built-in ping
// action of every namespace.
const PingResponse = "pong"

// PingAction is the name of the built-in liveness action.
const PingAction = "ping"

// channelSeparator joins the namespace name and the action name into the
// wire-level channel address. Both segments are case-sensitive and carried
// unescaped.
const channelSeparator = ":"

// ActionFunc is a single externally invocable operation belonging to a
// namespace. It receives the per-call context plus the caller's positional
// arguments and settles to a Result. Errors returned (or panics raised) are
// normalized by the dispatcher; they never reach the transport.
type ActionFunc func(cc *core.CallContext, args ...any) (*core.Result, error)

// Actions is the static action table a namespace is constructed from. The
// table is evaluated exactly once, at construction; the resulting registry is
// immutable afterwards.
type Actions map[string]ActionFunc

// Namespace groups host-side capabilities under a common dispatch prefix.
// Its action registry is populated during construction and never mutated
// afterwards, so a Namespace is safe for concurrent use.
//
// Every namespace carries the built-in ping action for external liveness
// probing; the name is reserved and cannot be redefined.
type Namespace struct {
	name    string
	actions map[string]ActionFunc
}

// New constructs a namespace from its name and static action table.
//
// Misuse of the registration mechanism is a programming defect that must fail
// loudly at startup: New panics with *core.RegistrationError when the
// namespace name is empty, an action name is empty, a handler is nil, or the
// reserved ping name is redefined.
func New(name string, actions Actions) *Namespace {
	if name == "" {
		panic(&core.RegistrationError{Reason: "namespace name must not be empty"})
	}
	ns := &Namespace{
		name:    name,
		actions: make(map[string]ActionFunc, len(actions)+1),
	}
	ns.actions[PingAction] = ping
	for actionName, fn := range actions {
		if actionName == "" {
			panic(&core.RegistrationError{Namespace: name, Reason: "action name must not be empty"})
		}
		if fn == nil {
			panic(&core.RegistrationError{Namespace: name, Action: actionName, Reason: "action handler must not be nil"})
		}
		if actionName == PingAction {
			panic(&core.RegistrationError{Namespace: name, Action: actionName, Reason: "ping is reserved"})
		}
		ns.actions[actionName] = fn
	}
	return ns
}

// Name returns the namespace identity used as the channel prefix.
func (ns *Namespace) Name() string { return ns.name }

// Action returns the bound handler for name. The boolean is false when the
// name was never registered or resolves to no callable handler.
func (ns *Namespace) Action(name string) (ActionFunc, bool) {
	fn, ok := ns.actions[name]
	if !ok || fn == nil {
		return nil, false
	}
	return fn, true
}

// Channel returns the wire-level address "<Name>:<action>" for a registered
// action. The boolean is false when the action was never registered.
func (ns *Namespace) Channel(action string) (string, bool) {
	if _, ok := ns.actions[action]; !ok {
		return "", false
	}
	return ns.name + channelSeparator + action, true
}

// ActionNames returns the registered action names in sorted order.
func (ns *Namespace) ActionNames() []string {
	names := make([]string, 0, len(ns.actions))
	for name := range ns.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ping is the built-in liveness action shared by all namespaces.
func ping(_ *core.CallContext, _ ...any) (*core.Result, error) {
	return core.OK(PingResponse), nil
}
