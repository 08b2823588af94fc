// Package core provides the foundational domain types shared by the Synta
// host's dispatch subsystem. It defines:
//
//   - Result (the settlement value of every action invocation)
//   - CallContext (scoped per-call execution context handed to actions)
//   - The error taxonomy for registration, registry lookup and lifecycle
//     failures
//
// The package intentionally keeps implementation concerns (transports,
// namespaces, the service registry) out of scope, exposing small types so
// higher layers can depend on contracts rather than on each other.
package core
