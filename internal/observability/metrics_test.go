package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/login", "POST", 200, time.Millisecond)
	m.RecordRequest("/api/login", "POST", 200, time.Millisecond)
	m.RecordError("/api/login", "POST", "UNAUTHORIZED")
	m.RecordLogin("customer")
	m.RecordLogin("invalid")
	m.RecordLogin("invalid")

	snap := m.Snapshot()

	assert.Equal(t, int64(2), snap.Requests["/api/login|POST|200"])
	assert.Equal(t, int64(1), snap.Errors["/api/login|POST|UNAUTHORIZED"])
	assert.Equal(t, map[string]int64{"customer": 1, "invalid": 2}, snap.Logins)

	snap.Logins["customer"] = 99
	assert.Equal(t, int64(1), m.Snapshot().Logins["customer"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, 0)
	m.RecordError("/", "GET", "X")
	m.RecordLogin("admin")
	assert.Empty(t, m.Snapshot().Logins)
}
