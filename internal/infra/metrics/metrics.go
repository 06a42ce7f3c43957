package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	AuthzDecisionsTotal *prometheus.CounterVec
	AccountConnects     *prometheus.CounterVec
	PlanChangesTotal    *prometheus.CounterVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		AuthzDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduler_authz_decisions_total",
				Help: "Permission, role and feature gate decisions",
			},
			[]string{"kind", "subject", "result"},
		),
		AccountConnects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduler_account_connects_total",
				Help: "Social account connection attempts by outcome",
			},
			[]string{"plan", "outcome"},
		),
		PlanChangesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduler_plan_changes_total",
				Help: "Plan changes applied to users",
			},
			[]string{"plan", "source"},
		),
	}

	registry.MustRegister(m.AuthzDecisionsTotal, m.AccountConnects, m.PlanChangesTotal)
	return m
}

func (m *Metrics) Decision(kind, subject string, allowed bool) {
	if m == nil {
		return
	}
	result := "denied"
	if allowed {
		result = "allowed"
	}
	m.AuthzDecisionsTotal.WithLabelValues(kind, subject, result).Inc()
}

func (m *Metrics) Connect(plan, outcome string) {
	if m == nil {
		return
	}
	m.AccountConnects.WithLabelValues(plan, outcome).Inc()
}

func (m *Metrics) PlanChanged(plan, source string) {
	if m == nil {
		return
	}
	m.PlanChangesTotal.WithLabelValues(plan, source).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
