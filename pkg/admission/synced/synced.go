// Package synced wraps an admission limiter with a mutex so one
// instance can be shared across goroutines.
//
// The algorithm cores deliberately carry no locking, leaving the
// concurrency discipline to the embedding layer. This wrapper is the
// simplest such discipline; alternatives are routing all decisions
// through a single owner goroutine, or sharding limiters per key.
package synced

import (
	"sync"
	"time"

	"github.com/vnykmshr/goadmit/pkg/admission"
	"github.com/vnykmshr/goadmit/pkg/common/validation"
)

// Limiter serializes access to a wrapped admission.Limiter.
// It is safe for concurrent use.
type Limiter struct {
	mu    sync.Mutex
	inner admission.Limiter
}

var _ admission.Limiter = (*Limiter)(nil)

// Wrap returns a concurrency-safe limiter delegating to inner.
// The caller must not use inner directly afterwards.
func Wrap(inner admission.Limiter) (*Limiter, error) {
	if err := validation.ValidateNotNil("synced", "limiter", inner); err != nil {
		return nil, err
	}
	return &Limiter{inner: inner}, nil
}

// TryConsume decides whether one request may proceed now, holding the
// wrapper's mutex for the duration of the decision.
func (l *Limiter) TryConsume() (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.TryConsume()
}
