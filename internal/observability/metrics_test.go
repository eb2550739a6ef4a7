package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/events", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/events", "GET", 200, 5*time.Millisecond)
	m.RecordError("/auth/login", "POST", "UNAUTHORIZED")

	snap := m.Snapshot()

	assert.Equal(t, int64(2), snap.Requests["/events|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/auth/login|POST|UNAUTHORIZED"])
	assert.Equal(t, 10*time.Millisecond, snap.TotalLatency)

	snap.Requests["/events|GET|200"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Requests["/events|GET|200"])
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")

	assert.Empty(t, m.Snapshot().Requests)
}
