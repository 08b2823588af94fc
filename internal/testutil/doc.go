// Package testutil provides shared helpers for exercising the service
// lifecycle in tests: scripted services that journal the order of their init
// and dispose hooks.
package testutil
