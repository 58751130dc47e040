package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LedgerMetrics counts order activity. A nil *LedgerMetrics is safe to use;
// every method becomes a no-op, so the ledger can run unmetered in tests.
type LedgerMetrics struct {
	OrdersCreated     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	OrderTotal        prometheus.Histogram
}

// NewLedgerMetrics registers the ledger metrics with the given registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	m := &LedgerMetrics{
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "ledger",
			Name:      "orders_created_total",
			Help:      "Total number of orders created.",
		}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "ledger",
			Name:      "order_status_transitions_total",
			Help:      "Total number of order status transitions.",
		}, []string{"status"}),
		OrderTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "store",
			Subsystem: "ledger",
			Name:      "order_total_dollars",
			Help:      "Distribution of order totals.",
			Buckets:   []float64{10, 25, 50, 75, 100, 150, 200, 300, 500},
		}),
	}
	reg.MustRegister(m.OrdersCreated, m.StatusTransitions, m.OrderTotal)
	return m
}

// RecordOrderCreated counts a new order and observes its total.
func (m *LedgerMetrics) RecordOrderCreated(total float64) {
	if m == nil {
		return
	}
	m.OrdersCreated.Inc()
	m.OrderTotal.Observe(total)
}

// RecordStatusTransition counts a transition into the given status.
func (m *LedgerMetrics) RecordStatusTransition(status string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(status).Inc()
}

// Handler exposes metrics from the given registry for a host that wants to
// mount them.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
