/*
Package slidinglog provides exact sliding window admission control.

The limiter keeps an ordered log of the admission timestamps still
inside the window, oldest first. Each decision first expires entries
older than the window, then admits while the log holds fewer entries
than the quota. The admitted count inside any real-time span of one
window length therefore never exceeds the quota, with no boundary
burst.

Basic usage:

	limiter, err := slidinglog.New(100, time.Minute) // 100 requests per minute
	if err != nil {
		// Invalid parameters.
	}

	if admitted, retryAfter := limiter.TryConsume(); !admitted {
		// Oldest admission leaves the window after retryAfter.
	}

Cost:

The precision is paid for in memory: each limiter holds up to quota
timestamps. The per-call work is proportional to the entries expired on
that call, which is amortized O(1) since every entry is removed at most
once. The log's backing array is allocated once at construction and
reused, so an idle limiter does not grow and a busy one does not
allocate per decision.

Comparison with the other algorithms:

	// Fixed window: O(1) memory, but up to 2x quota at window boundaries
	fw, _ := fixedwindow.New(100, time.Minute)

	// Token bucket: O(1) memory, burst tolerance up to capacity
	tb, _ := tokenbucket.New(100, 600*time.Millisecond)

	// Sliding log: exact bound, O(quota) memory
	sl, _ := slidinglog.New(100, time.Minute)

State inspection:

	n := limiter.Len()         // Entries observed by the last decision
	oldest := limiter.Oldest() // Oldest logged admission, zero if none

Like the other algorithm cores, the limiter carries no internal locking;
serialize shared instances in the embedding layer.
*/
package slidinglog
