package hasura

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	outcomeOK        = "ok"
	outcomeTransport = "transport_error"
	outcomeGraphQL   = "graphql_error"
	outcomeVariables = "variable_error"
)

// Metrics records per-operation latency and failures. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg when
// reg is non-nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ppmdesk",
			Subsystem: "hasura",
			Name:      "operation_duration_seconds",
			Help:      "Latency of GraphQL operations sent to Hasura.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ppmdesk",
			Subsystem: "hasura",
			Name:      "operation_failures_total",
			Help:      "GraphQL operations that failed, by failure class.",
		}, []string{"operation", "outcome"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.duration, m.failures} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) observe(op, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(op, outcome).Observe(elapsed.Seconds())
	if outcome != outcomeOK {
		m.failures.WithLabelValues(op, outcome).Inc()
	}
}
