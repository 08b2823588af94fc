// Package ratelimit provides a per-action sliding-window call guard. A Guard
// wraps a single namespace action; rejected calls settle immediately with a
// configurable payload carrying an estimated retry-after duration, and never
// consume a window slot.
package ratelimit
