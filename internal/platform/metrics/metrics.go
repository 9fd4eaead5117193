package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics counts upstream store calls. Create one per process and hand its
// Record method to whatever performs the calls.
type Metrics struct {
	submitCalls  int64
	listCalls    int64
	errors       int64
	latencyNanos int64
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	SubmitCalls int64   `json:"submit_calls"`
	ListCalls   int64   `json:"list_calls"`
	Errors      int64   `json:"errors"`
	AvgLatency  float64 `json:"avg_latency_ms"`
	ErrorRate   float64 `json:"error_rate_pct"`
}

func New() *Metrics {
	return &Metrics{}
}

// Record counts one call of the named operation. Unknown operations are ignored.
func (m *Metrics) Record(operation string, duration time.Duration, err error) {
	switch operation {
	case "submit":
		atomic.AddInt64(&m.submitCalls, 1)
	case "list":
		atomic.AddInt64(&m.listCalls, 1)
	default:
		return
	}
	atomic.AddInt64(&m.latencyNanos, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&m.errors, 1)
	}
}

// Snapshot returns the current counters
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		SubmitCalls: atomic.LoadInt64(&m.submitCalls),
		ListCalls:   atomic.LoadInt64(&m.listCalls),
		Errors:      atomic.LoadInt64(&m.errors),
	}
	latency := atomic.LoadInt64(&m.latencyNanos)
	if total := s.SubmitCalls + s.ListCalls; total > 0 {
		s.AvgLatency = float64(latency) / float64(total) / 1e6
		s.ErrorRate = float64(s.Errors) / float64(total) * 100
	}
	return s
}

// Reset zeroes all counters
func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.submitCalls, 0)
	atomic.StoreInt64(&m.listCalls, 0)
	atomic.StoreInt64(&m.errors, 0)
	atomic.StoreInt64(&m.latencyNanos, 0)
}
