package slidinglog

import (
	"time"

	"github.com/vnykmshr/goadmit/pkg/admission"
	"github.com/vnykmshr/goadmit/pkg/common/validation"
)

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// Quota is the maximum number of requests admitted within any
	// window-length span.
	Quota int

	// Window is the length of the sliding window.
	Window time.Duration

	// Clock provides the current time. If nil, SystemClock is used.
	Clock admission.Clock
}

// Limiter implements sliding window log admission control.
//
// It is a plain state machine with no internal locking; see the
// admission package documentation for concurrency discipline.
type Limiter struct {
	quota  int
	window time.Duration
	log    []time.Time // admission timestamps, oldest first
	clock  admission.Clock
}

var _ admission.Limiter = (*Limiter)(nil)
var _ admission.Occupant = (*Limiter)(nil)

// New creates a sliding log limiter admitting quota requests per window.
func New(quota int, window time.Duration) (*Limiter, error) {
	return NewWithConfig(Config{
		Quota:  quota,
		Window: window,
	})
}

// NewWithConfig creates a sliding log limiter with the specified configuration.
func NewWithConfig(config Config) (*Limiter, error) {
	if err := validation.ValidatePositive("slidinglog", "quota", config.Quota); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositiveDuration("slidinglog", "window", config.Window); err != nil {
		return nil, err
	}
	if config.Clock == nil {
		config.Clock = admission.SystemClock{}
	}

	return &Limiter{
		quota:  config.Quota,
		window: config.Window,
		log:    make([]time.Time, 0, config.Quota),
		clock:  config.Clock,
	}, nil
}
