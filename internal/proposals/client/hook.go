package client

import (
	"context"
	"net/url"
	"time"

	"github.com/neighborswap/proposal-exchange/internal/platform/logging"
	"github.com/neighborswap/proposal-exchange/internal/platform/metrics"
	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
)

// Event describes one completed Submit or List call
type Event struct {
	Operation  string
	Method     string
	URL        string
	StatusCode int // 0 when no response arrived
	Count      int // proposals returned by List
	Duration   time.Duration
	Err        error
}

// Hook receives an Event after every call. It runs on the caller's goroutine.
type Hook func(ctx context.Context, ev Event)

// ChainHooks runs hooks in order, skipping nil entries
func ChainHooks(hooks ...Hook) Hook {
	return func(ctx context.Context, ev Event) {
		for _, h := range hooks {
			if h != nil {
				h(ctx, ev)
			}
		}
	}
}

// LogHook writes each event through the request-scoped logger
func LogHook() Hook {
	return func(ctx context.Context, ev Event) {
		logger := logging.NewLogger(ctx)
		path := eventPath(ev.URL)
		if ev.Err != nil {
			logger.LogErrorf(ev.Operation, "method=%s path=%s status=%d kind=%s latency=%s error=%v",
				ev.Method, path, ev.StatusCode, domain.KindOf(ev.Err), ev.Duration, ev.Err)
			return
		}
		if ev.Operation == OpList {
			logger.LogInfof(ev.Operation, "method=%s path=%s status=%d count=%d latency=%s",
				ev.Method, path, ev.StatusCode, ev.Count, ev.Duration)
			return
		}
		logger.LogInfof(ev.Operation, "method=%s path=%s status=%d latency=%s",
			ev.Method, path, ev.StatusCode, ev.Duration)
	}
}

// MetricsHook feeds each event into m
func MetricsHook(m *metrics.Metrics) Hook {
	return func(_ context.Context, ev Event) {
		m.Record(ev.Operation, ev.Duration, ev.Err)
	}
}

func eventPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || raw == "" {
		return "-"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
