// Package dispatch binds namespace actions to transport-level handlers. Each
// action is addressed by its channel string "<Namespace>:<action>"; the last
// registration for a channel always wins, making hot-reload re-registration
// idempotent. Handlers normalize every failure inside an action body into a
// status-500 Result, so an exception never escapes to the transport layer.
//
// The package ships a LocalTransport for the in-process host↔front-end pair;
// anything distributed is out of scope.
package dispatch
