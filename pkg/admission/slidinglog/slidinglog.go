package slidinglog

import "time"

// TryConsume decides whether one request may proceed now.
//
// Entries older than the window are expired first; an idle limiter may
// expire many entries on a single call. On rejection the suggested
// retry delay is the time until the oldest still-counted admission
// leaves the window.
func (l *Limiter) TryConsume() (bool, time.Duration) {
	now := l.clock.Now()
	l.expire(now)

	if len(l.log) < l.quota {
		l.log = append(l.log, now)
		return true, 0
	}

	return false, l.log[0].Add(l.window).Sub(now)
}

// expire drops log entries older than the window. Survivors are copied
// down within the backing array, so the log never allocates after
// construction.
func (l *Limiter) expire(now time.Time) {
	cutoff := now.Add(-l.window)

	i := 0
	for i < len(l.log) && l.log[i].Before(cutoff) {
		i++
	}
	if i > 0 {
		l.log = append(l.log[:0], l.log[i:]...)
	}
}

// Quota returns the maximum number of requests admitted per window.
func (l *Limiter) Quota() int {
	return l.quota
}

// Window returns the length of the sliding window.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Len returns the number of logged admissions as of the most recent
// decision. It does not expire entries.
func (l *Limiter) Len() int {
	return len(l.log)
}

// Occupancy returns the quota units consumed as of the most recent
// decision, the number of admissions still inside the window.
func (l *Limiter) Occupancy() int {
	return len(l.log)
}

// Oldest returns the oldest logged admission as of the most recent
// decision, or the zero time if the log is empty.
func (l *Limiter) Oldest() time.Time {
	if len(l.log) == 0 {
		return time.Time{}
	}
	return l.log[0]
}
