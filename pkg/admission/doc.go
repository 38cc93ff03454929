/*
Package admission provides admission-control primitives for Go applications.

Three interchangeable algorithms implement the Limiter contract:

  - fixedwindow: Counts requests in discrete, non-overlapping windows
  - tokenbucket: Replenishing pool of permits with burst tolerance
  - slidinglog: Exact sliding window over logged admission timestamps

Choosing an algorithm:

Fixed window is the cheapest: O(1) time and memory per call. Its windows
are aligned to the first request, so up to twice the quota can slip
through in a span shorter than one window when traffic straddles a
window boundary.

Token bucket smooths admission to a steady refill rate while tolerating
short bursts up to the bucket capacity, also in O(1) time and memory.

Sliding log is exact: the admitted count inside any real-time window
never exceeds the quota. It pays for that precision with O(quota)
memory per limiter.

All three share one decision operation, so call sites do not change
when the algorithm does:

	var limiter admission.Limiter
	limiter, err := slidinglog.New(100, time.Minute)
	if err != nil {
		// Invalid construction parameters.
	}

	admitted, retryAfter := limiter.TryConsume()
	if !admitted {
		// Reject the request; retryAfter says when to try again.
	}

Expiry and refill are folded into the decision path itself. There is no
background timer: an idle limiter advances its state only when next
queried, and behaves after a long idle period exactly like a freshly
constructed one.

Limiter cores are not safe for concurrent use. Wrap them with the
synced subpackage, route calls through a single owner goroutine, or
shard instances per key.
*/
package admission
