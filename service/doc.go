// Package service implements the host's service registry: the single holder
// of long-lived services such as the logging service and the IPC dispatcher.
//
// Services are added in dependency order, sealed and initialized by Init
// (registration order) and torn down by Dispose (reverse order). Lifecycle
// hooks are optional interfaces — any value can be registered; only values
// implementing Initializer or Disposer participate in the ordered
// transitions. Hook failures are fail-soft: logged per service, never
// aborting siblings.
//
// The logger occupies a privileged key: looking it up always succeeds, with a
// dependency-free fallback standing in whenever the real service is not
// available, so log calls never fail due to registry state.
package service
