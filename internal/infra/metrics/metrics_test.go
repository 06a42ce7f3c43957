package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.Decision("permission", "canPublish", true)
	m.Decision("permission", "canPublish", false)
	m.Decision("permission", "canPublish", false)
	m.Connect("free", "limit_reached")
	m.PlanChanged("pro", "stripe")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthzDecisionsTotal.WithLabelValues("permission", "canPublish", "allowed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthzDecisionsTotal.WithLabelValues("permission", "canPublish", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountConnects.WithLabelValues("free", "limit_reached")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlanChangesTotal.WithLabelValues("pro", "stripe")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Decision("role", "owner", true)
		m.Connect("free", "ok")
		m.PlanChanged("pro", "admin")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.Connect("starter", "ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `scheduler_account_connects_total{outcome="ok",plan="starter"} 1`)
}
