package admission

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goadmit/pkg/common/validation"
	"github.com/vnykmshr/goadmit/pkg/metrics"
)

// Occupant is implemented by limiters that can report how many quota
// units are currently consumed. All limiters in this library satisfy it.
type Occupant interface {
	Occupancy() int
}

// Instrumented wraps a Limiter with Prometheus metrics collection.
//
// It records every decision under the given limiter type and name
// labels. The wrapper adds no synchronization; like the limiter cores
// it must be serialized by the caller when shared across goroutines.
type Instrumented struct {
	limiter     Limiter
	limiterType string
	name        string
	registry    *metrics.Registry
	enabled     bool
}

// NewInstrumented wraps limiter with metrics collection. limiterType
// identifies the algorithm (e.g. "fixed_window") and name identifies
// this particular limiter instance in the exported metrics.
func NewInstrumented(limiter Limiter, limiterType, name string, config metrics.Config) (*Instrumented, error) {
	if err := validation.ValidateNotNil("admission", "limiter", limiter); err != nil {
		return nil, err
	}
	if err := validation.ValidateNotEmpty("admission", "limiterType", limiterType); err != nil {
		return nil, err
	}
	if err := validation.ValidateNotEmpty("admission", "name", name); err != nil {
		return nil, err
	}

	// The default registerer already backs DefaultRegistry; creating a
	// second registry on it would register duplicate collectors.
	registry := metrics.DefaultRegistry
	if config.Registry != nil && config.Registry != prometheus.DefaultRegisterer {
		registry = metrics.NewRegistry(config.Registry)
	}

	return &Instrumented{
		limiter:     limiter,
		limiterType: limiterType,
		name:        name,
		registry:    registry,
		enabled:     config.Enabled,
	}, nil
}

// TryConsume delegates the decision to the wrapped limiter and records
// the outcome.
func (il *Instrumented) TryConsume() (bool, time.Duration) {
	admitted, retryAfter := il.limiter.TryConsume()

	if il.enabled {
		il.registry.AdmissionRequests.WithLabelValues(il.limiterType, il.name).Inc()
		if admitted {
			il.registry.AdmissionAdmitted.WithLabelValues(il.limiterType, il.name).Inc()
		} else {
			il.registry.AdmissionRejected.WithLabelValues(il.limiterType, il.name).Inc()
			il.registry.AdmissionRetryAfter.WithLabelValues(il.limiterType, il.name).Observe(retryAfter.Seconds())
		}
		if occ, ok := il.limiter.(Occupant); ok {
			il.registry.AdmissionOccupancy.WithLabelValues(il.limiterType, il.name).Set(float64(occ.Occupancy()))
		}
	}

	return admitted, retryAfter
}

// Unwrap returns the wrapped limiter.
func (il *Instrumented) Unwrap() Limiter {
	return il.limiter
}

// EnableMetrics enables metrics collection.
func (il *Instrumented) EnableMetrics(config metrics.Config) error {
	il.enabled = config.Enabled

	if config.Registry != nil && config.Registry != prometheus.DefaultRegisterer {
		il.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (il *Instrumented) DisableMetrics() {
	il.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (il *Instrumented) MetricsEnabled() bool {
	return il.enabled
}

var _ Limiter = (*Instrumented)(nil)
var _ metrics.Instrumentable = (*Instrumented)(nil)
