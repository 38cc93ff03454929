// Package tokenbucket provides token bucket admission control.
//
// The bucket starts full and gains one token per refill interval, up to
// its capacity. Each admitted request consumes one token, so bursts up
// to the capacity are tolerated while sustained traffic is held to one
// request per interval.
package tokenbucket

import (
	"time"

	"github.com/vnykmshr/goadmit/pkg/admission"
	"github.com/vnykmshr/goadmit/pkg/common/validation"
)

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// Capacity is the maximum number of tokens the bucket can hold.
	Capacity int

	// RefillInterval is the time between token grants.
	RefillInterval time.Duration

	// Clock provides the current time. If nil, SystemClock is used.
	Clock admission.Clock
}

// Limiter implements token bucket admission control.
//
// It is a plain state machine with no internal locking; see the
// admission package documentation for concurrency discipline.
type Limiter struct {
	capacity       int
	refillInterval time.Duration
	lastRefill     time.Time
	tokens         int
	clock          admission.Clock
}

var _ admission.Limiter = (*Limiter)(nil)
var _ admission.Occupant = (*Limiter)(nil)

// New creates a token bucket limiter with the given capacity and refill
// interval. The bucket starts full.
func New(capacity int, refillInterval time.Duration) (*Limiter, error) {
	return NewWithConfig(Config{
		Capacity:       capacity,
		RefillInterval: refillInterval,
	})
}

// NewWithConfig creates a token bucket limiter with the specified configuration.
func NewWithConfig(config Config) (*Limiter, error) {
	if err := validation.ValidatePositive("tokenbucket", "capacity", config.Capacity); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositiveDuration("tokenbucket", "refillInterval", config.RefillInterval); err != nil {
		return nil, err
	}
	if config.Clock == nil {
		config.Clock = admission.SystemClock{}
	}

	return &Limiter{
		capacity:       config.Capacity,
		refillInterval: config.RefillInterval,
		lastRefill:     config.Clock.Now(),
		tokens:         config.Capacity,
		clock:          config.Clock,
	}, nil
}
