// Package metrics exposes Prometheus collectors for seating runs and RPC traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/tableplanner/internal/seating"
)

// Outcome labels for AssignmentsTotal.
const (
	OutcomeComplete = "complete"
	OutcomePartial  = "partial"
	OutcomeNone     = "none"
)

// Metrics holds the planner's collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	AssignmentsTotal   *prometheus.CounterVec
	UnassignedGuests   prometheus.Histogram
	AssignmentDuration prometheus.Histogram
	RPCRequestsTotal   *prometheus.CounterVec
}

// New registers the planner collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AssignmentsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tableplanner_assignments_total",
			Help: "Automatic seating runs by outcome.",
		}, []string{"outcome"}),
		UnassignedGuests: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tableplanner_assignment_unassigned_guests",
			Help:    "Guests left without a seat after a seating run.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		AssignmentDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tableplanner_assignment_duration_seconds",
			Help:    "Time spent computing a seating assignment.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		RPCRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tableplanner_rpc_requests_total",
			Help: "Connect RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
	}
}

// ObserveAssignment records one seating run that took d.
func (m *Metrics) ObserveAssignment(res seating.Result, d time.Duration) {
	if m == nil {
		return
	}
	m.AssignmentsTotal.WithLabelValues(outcome(res)).Inc()
	m.UnassignedGuests.Observe(float64(res.UnassignedCount))
	m.AssignmentDuration.Observe(d.Seconds())
}

// ObserveRPC counts one handled RPC.
func (m *Metrics) ObserveRPC(procedure, code string) {
	if m == nil {
		return
	}
	m.RPCRequestsTotal.WithLabelValues(procedure, code).Inc()
}

func outcome(res seating.Result) string {
	switch {
	case res.Success:
		return OutcomeComplete
	case res.AssignedCount > 0:
		return OutcomePartial
	default:
		return OutcomeNone
	}
}
