// Package system houses the System namespace: host metadata and diagnostics
// actions (version, platform, uptime, a rate-limited reportIssue) exposed to
// the front-end under the "System:" channel prefix.
package system
