package fixedwindow

import "time"

// TryConsume decides whether one request may proceed now.
//
// An expired window is reset before the check, anchoring the new window
// at the current instant. On rejection the suggested retry delay is the
// time remaining until the current window ends.
func (l *Limiter) TryConsume() (bool, time.Duration) {
	now := l.clock.Now()

	if now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		l.count = 0
	}

	if l.count < l.quota {
		l.count++
		return true, 0
	}

	return false, l.window - now.Sub(l.windowStart)
}

// Quota returns the maximum number of requests admitted per window.
func (l *Limiter) Quota() int {
	return l.quota
}

// Window returns the length of each admission window.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Count returns the number of requests admitted in the window observed
// by the most recent decision. It does not advance the window.
func (l *Limiter) Count() int {
	return l.count
}

// Occupancy returns the quota units consumed as of the most recent
// decision. For the fixed window that is the current window's count.
func (l *Limiter) Occupancy() int {
	return l.count
}

// WindowStart returns the start of the window observed by the most
// recent decision.
func (l *Limiter) WindowStart() time.Time {
	return l.windowStart
}
