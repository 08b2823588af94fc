package core

import (
	"context"

	"github.com/SyntaApp/app/logging"
)

// CallContext carries the per-invocation execution scope handed to an action.
// It aggregates:
//   - The ambient cancellation Context supplied by the transport
//   - A unique CallID for correlating log records with a single dispatch
//   - The resolved Channel the call arrived on
//   - A Logger pre-scoped to the dispatching namespace
//
// A CallContext is created by the dispatcher for every inbound call and is
// valid only for the duration of that call.
type CallContext struct {
	Context context.Context
	CallID  string
	Channel string
	Logger  logging.Logger
}

// NewCallContext constructs a CallContext. A nil logger is substituted with a
// NoOpLogger so actions can log unconditionally.
func NewCallContext(ctx context.Context, callID, channel string, logger logging.Logger) *CallContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &CallContext{Context: ctx, CallID: callID, Channel: channel, Logger: logger}
}

// Done mirrors context.Context's Done for the underlying ambient context.
func (cc *CallContext) Done() <-chan struct{} { return cc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (cc *CallContext) Err() error { return cc.Context.Err() }
