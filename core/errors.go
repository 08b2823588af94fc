package core

import "fmt"

// RegistrationError signals misuse of the action registration mechanism, such
// as an empty action name or a nil handler. It indicates a programming defect
// that must fail loudly: namespace constructors panic with it at definition
// time, before the process can serve a single call.
type RegistrationError struct {
	Namespace string // namespace under construction
	Action    string // offending action name (may be empty)
	Reason    string
}

func (e *RegistrationError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("registration error in namespace %q: %s", e.Namespace, e.Reason)
	}
	return fmt.Sprintf("registration error in namespace %q, action %q: %s", e.Namespace, e.Action, e.Reason)
}

// NotReadyError is returned when a service is requested from the registry
// before the registry has been sealed by Init.
type NotReadyError struct {
	Key string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("service %q requested before registry initialization", e.Key)
}

// NotRegisteredError is returned when a service key was never added to the
// registry before sealing.
type NotRegisteredError struct {
	Key string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("service %q is not registered", e.Key)
}

// LifecycleError wraps a failure from a service init or dispose hook. The
// registry logs these per service and keeps going; they never abort sibling
// lifecycle calls.
type LifecycleError struct {
	Key  string // service key whose hook failed
	Hook string // "init" or "dispose"
	Err  error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("service %q %s failed: %v", e.Key, e.Hook, e.Err)
}

func (e *LifecycleError) Unwrap() error { return e.Err }
