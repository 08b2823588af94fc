// Package namespace defines the capability bundles the host exposes to its
// front-end surfaces. A namespace is constructed once, at bootstrap, from a
// static table of action names to handlers; the table becomes immutable at
// that point, and every bundle carries a built-in ping action for liveness
// probing.
//
// Misregistration (empty names, nil handlers, redefining ping) panics with a
// *core.RegistrationError so defective wiring aborts process startup instead
// of surfacing at call time.
package namespace
