// Package fixedwindow provides fixed window admission control.
//
// Time is partitioned into consecutive windows of fixed length, each
// admitting at most the configured quota. The window rolls over lazily:
// it is recomputed on demand by the next decision, never by a timer.
//
// Up to twice the quota can be admitted within a span shorter than one
// window when requests straddle a window boundary. That is an inherent
// property of the algorithm; use slidinglog when the bound must be exact.
package fixedwindow

import (
	"time"

	"github.com/vnykmshr/goadmit/pkg/admission"
	"github.com/vnykmshr/goadmit/pkg/common/validation"
)

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// Quota is the maximum number of requests admitted per window.
	Quota int

	// Window is the length of each admission window.
	Window time.Duration

	// Clock provides the current time. If nil, SystemClock is used.
	Clock admission.Clock
}

// Limiter implements fixed window admission control.
//
// It is a plain state machine with no internal locking; see the
// admission package documentation for concurrency discipline.
type Limiter struct {
	quota       int
	window      time.Duration
	windowStart time.Time
	count       int
	clock       admission.Clock
}

var _ admission.Limiter = (*Limiter)(nil)
var _ admission.Occupant = (*Limiter)(nil)

// New creates a fixed window limiter admitting quota requests per window.
func New(quota int, window time.Duration) (*Limiter, error) {
	return NewWithConfig(Config{
		Quota:  quota,
		Window: window,
	})
}

// NewWithConfig creates a fixed window limiter with the specified configuration.
func NewWithConfig(config Config) (*Limiter, error) {
	if err := validation.ValidatePositive("fixedwindow", "quota", config.Quota); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositiveDuration("fixedwindow", "window", config.Window); err != nil {
		return nil, err
	}
	if config.Clock == nil {
		config.Clock = admission.SystemClock{}
	}

	return &Limiter{
		quota:       config.Quota,
		window:      config.Window,
		windowStart: config.Clock.Now(),
		clock:       config.Clock,
	}, nil
}
