package admission

import "time"

// Limiter is the contract shared by every admission-control algorithm.
//
// Implementations are single-owner state machines: they carry no internal
// locking, and every state transition happens inside TryConsume. Callers
// that share one instance across goroutines must serialize access, for
// example with the synced package.
type Limiter interface {
	// TryConsume decides whether one request may proceed now.
	//
	// When admitted is true the request has been recorded against the
	// limiter's quota and retryAfter is zero. When admitted is false the
	// request consumed no quota and retryAfter suggests how long the
	// caller should wait before retrying; it is never negative.
	TryConsume() (admitted bool, retryAfter time.Duration)
}

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
//
// Values returned by time.Now carry a monotonic clock reading, so
// durations computed between them are immune to wall-clock adjustments.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
