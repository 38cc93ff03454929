// Package metrics provides Prometheus instrumentation for goadmit components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goadmit components.
type Registry struct {
	AdmissionRequests   *prometheus.CounterVec
	AdmissionAdmitted   *prometheus.CounterVec
	AdmissionRejected   *prometheus.CounterVec
	AdmissionRetryAfter *prometheus.HistogramVec
	AdmissionOccupancy  *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by goadmit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		AdmissionRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "requests_total",
				Help:      "Total number of admission decisions requested",
			},
			[]string{"limiter_type", "limiter_name"},
		),

		AdmissionAdmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "admitted_total",
				Help:      "Total number of admitted requests",
			},
			[]string{"limiter_type", "limiter_name"},
		),

		AdmissionRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "rejected_total",
				Help:      "Total number of rejected requests",
			},
			[]string{"limiter_type", "limiter_name"},
		),

		AdmissionRetryAfter: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "retry_after_seconds",
				Help:      "Suggested retry delay returned with rejections",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"limiter_type", "limiter_name"},
		),

		AdmissionOccupancy: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "occupancy",
				Help:      "Quota units consumed as of the last admission decision",
			},
			[]string{"limiter_type", "limiter_name"},
		),
	}
}
