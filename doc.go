/*
Package goadmit provides admission-control primitives for Go services.

Given a stream of requests arriving at arbitrary times, an admission
limiter decides synchronously whether each request may proceed or must
be rejected, and how long a rejected caller should wait before retrying.

Admission Control (pkg/admission):
  - fixedwindow: Counts requests in discrete, non-overlapping windows
  - tokenbucket: Replenishing pool of permits with burst tolerance
  - slidinglog: Exact sliding window over logged admission timestamps
  - synced: Mutex wrapper for sharing one limiter across goroutines

All algorithms implement the same contract, so callers can swap them
without changing call sites:

	import (
		"github.com/vnykmshr/goadmit/pkg/admission"
		"github.com/vnykmshr/goadmit/pkg/admission/tokenbucket"
	)

	var limiter admission.Limiter
	limiter, _ = tokenbucket.New(20, 50*time.Millisecond)

	if admitted, retryAfter := limiter.TryConsume(); admitted {
		// Do the protected work.
	} else {
		// Reject, or retry after retryAfter.
	}

Limiter cores carry no internal locking; the embedding system chooses
its own concurrency discipline (per-key instances, a single serialized
owner, or the synced wrapper).
*/
package goadmit
