package core

import "fmt"

// Common status codes used by action results. The values deliberately mirror
// HTTP semantics so front-end code can reuse familiar handling.
const (
	StatusOK              = 200
	StatusBadRequest      = 400
	StatusTooManyRequests = 429
	StatusInternalError   = 500
)

// Result is the settlement value of every action invocation. Actions resolve
// to a Result on success; the dispatcher normalizes any error or panic raised
// inside an action body into a StatusInternalError Result, so transport code
// only ever sees this shape.
type Result struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a successful Result carrying the given payload.
func OK(data any) *Result {
	return &Result{Status: StatusOK, Data: data}
}

// Fail builds a failed Result with the given status and message.
func Fail(status int, message string) *Result {
	return &Result{Status: status, Message: message}
}

// Failf builds a failed Result with a formatted message.
func Failf(status int, format string, args ...any) *Result {
	return &Result{Status: status, Message: fmt.Sprintf(format, args...)}
}

// Failed reports whether the result carries a non-OK status.
func (r *Result) Failed() bool { return r.Status != StatusOK }
