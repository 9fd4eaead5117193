package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := New()
	assert.Equal(t, Snapshot{}, m.Snapshot())

	m.Record("submit", 10*time.Millisecond, nil)
	m.Record("list", 30*time.Millisecond, errors.New("boom"))
	m.Record("other", time.Second, errors.New("ignored"))

	s := m.Snapshot()
	assert.Equal(t, int64(1), s.SubmitCalls)
	assert.Equal(t, int64(1), s.ListCalls)
	assert.Equal(t, int64(1), s.Errors)
	assert.InDelta(t, 20.0, s.AvgLatency, 0.001)
	assert.InDelta(t, 50.0, s.ErrorRate, 0.001)

	m.Reset()
	assert.Equal(t, Snapshot{}, m.Snapshot())
}

func TestMetrics_ConcurrentRecord(t *testing.T) {
	m := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Record("list", time.Millisecond, nil)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50), m.Snapshot().ListCalls)
}
