package system

import (
	"runtime"
	"time"

	"github.com/SyntaApp/app/core"
	"github.com/SyntaApp/app/namespace"
	"github.com/SyntaApp/app/ratelimit"
)

// Name is the namespace identity, and therefore the channel prefix, of the
// system capability bundle.
const Name = "System"

// reportIssue is deliberately throttled: collecting a diagnostic snapshot is
// not free, and a misbehaving surface must not be able to spam it.
var reportIssueLimit = ratelimit.Config{
	Window: time.Minute,
	Max:    3,
	Rejection: &core.Result{
		Status:  core.StatusTooManyRequests,
		Message: "issue reports are limited, try again later",
	},
}

// New builds the System namespace exposing host metadata to the front-end:
//
//	System:version     — application version string
//	System:platform    — host OS and architecture
//	System:uptime      — milliseconds since the namespace was constructed
//	System:reportIssue — rate-limited diagnostic snapshot
//	System:ping        — built-in liveness probe
func New(version string) *namespace.Namespace {
	h := &handlers{version: version, started: time.Now()}
	return namespace.New(Name, namespace.Actions{
		"version":     h.getVersion,
		"platform":    h.platform,
		"uptime":      h.uptime,
		"reportIssue": ratelimit.New(reportIssueLimit).Wrap(h.reportIssue),
	})
}

type handlers struct {
	version string
	started time.Time
}

func (h *handlers) getVersion(_ *core.CallContext, _ ...any) (*core.Result, error) {
	return core.OK(h.version), nil
}

func (h *handlers) platform(_ *core.CallContext, _ ...any) (*core.Result, error) {
	return core.OK(map[string]any{
		"os":   runtime.GOOS,
		"arch": runtime.GOARCH,
	}), nil
}

func (h *handlers) uptime(_ *core.CallContext, _ ...any) (*core.Result, error) {
	return core.OK(time.Since(h.started).Milliseconds()), nil
}

func (h *handlers) reportIssue(cc *core.CallContext, args ...any) (*core.Result, error) {
	description := ""
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			description = s
		}
	}
	cc.Logger.Info("issue reported", map[string]any{
		"call_id":     cc.CallID,
		"description": description,
	})
	return core.OK(map[string]any{
		"received": true,
		"version":  h.version,
		"os":       runtime.GOOS,
		"uptimeMs": time.Since(h.started).Milliseconds(),
	}), nil
}
