package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// value reads the current value of a counter or gauge.
func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))

	if out.Counter != nil {
		return out.Counter.GetValue()
	}
	return out.Gauge.GetValue()
}

func TestRecordRequest(t *testing.T) {
	before := value(t, RequestsTotal.WithLabelValues("GET", "/api/user/history", "200"))

	RecordRequest("GET", "/api/user/history", "200", 0.01)

	after := value(t, RequestsTotal.WithLabelValues("GET", "/api/user/history", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordRejection(t *testing.T) {
	before := value(t, RejectionsTotal.WithLabelValues("login", "wrong_password"))

	RecordRejection("login", "wrong_password")

	assert.Equal(t, before+1, value(t, RejectionsTotal.WithLabelValues("login", "wrong_password")))
}

func TestRecordAuthFailure(t *testing.T) {
	before := value(t, AuthFailuresTotal)

	RecordAuthFailure()

	assert.Equal(t, before+1, value(t, AuthFailuresTotal))
}

func TestStoreConnectionStatus(t *testing.T) {
	SetStoreConnected()
	assert.Equal(t, float64(1), value(t, StoreConnectionStatus))

	SetStoreDisconnected()
	assert.Equal(t, float64(0), value(t, StoreConnectionStatus))
}
