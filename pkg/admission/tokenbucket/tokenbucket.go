package tokenbucket

import "time"

// TryConsume decides whether one request may proceed now.
//
// The bucket is refilled before the check. On rejection the suggested
// retry delay is the time remaining until the next whole refill
// interval elapses, when one token becomes available.
func (l *Limiter) TryConsume() (bool, time.Duration) {
	now := l.clock.Now()
	l.refill(now)

	if l.tokens > 0 {
		l.tokens--
		return true, 0
	}

	return false, l.refillInterval - now.Sub(l.lastRefill)
}

// refill grants tokens for whole refill intervals elapsed since
// lastRefill. Fractional elapsed time is carried forward by advancing
// lastRefill in whole intervals only, so refill timing stays exact
// regardless of how often the limiter is queried.
func (l *Limiter) refill(now time.Time) {
	if l.tokens >= l.capacity {
		// Full bucket: nothing to grant. Re-anchor so idle time is not
		// banked as an instant refill after the next consumption.
		l.lastRefill = now
		return
	}

	elapsed := now.Sub(l.lastRefill)
	if elapsed < l.refillInterval {
		return
	}

	intervals := int64(elapsed / l.refillInterval)
	if intervals >= int64(l.capacity-l.tokens) {
		// The bucket fills completely; the remainder of the idle period
		// is irrelevant and the limiter is equivalent to a fresh one.
		l.tokens = l.capacity
		l.lastRefill = now
		return
	}

	l.tokens += int(intervals)
	l.lastRefill = l.lastRefill.Add(time.Duration(intervals) * l.refillInterval)
}

// Capacity returns the maximum number of tokens the bucket can hold.
func (l *Limiter) Capacity() int {
	return l.capacity
}

// RefillInterval returns the time between token grants.
func (l *Limiter) RefillInterval() time.Duration {
	return l.refillInterval
}

// Tokens returns the number of tokens available as of the most recent
// decision. It does not trigger a refill.
func (l *Limiter) Tokens() int {
	return l.tokens
}

// Occupancy returns the quota units consumed as of the most recent
// decision, the capacity minus the available tokens.
func (l *Limiter) Occupancy() int {
	return l.capacity - l.tokens
}
