package synced

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vnykmshr/goadmit/internal/testutil"
	"github.com/vnykmshr/goadmit/pkg/admission/tokenbucket"
)

func TestWrapValidation(t *testing.T) {
	if _, err := Wrap(nil); err == nil {
		t.Error("expected error for nil limiter")
	}

	inner, err := tokenbucket.New(1, time.Second)
	testutil.AssertNoError(t, err)

	limiter, err := Wrap(inner)
	testutil.AssertNoError(t, err)
	if limiter == nil {
		t.Fatal("expected non-nil limiter")
	}
}

func TestWrapDelegates(t *testing.T) {
	clock := testutil.NewMockClock(time.Now())
	inner, err := tokenbucket.NewWithConfig(tokenbucket.Config{
		Capacity:       1,
		RefillInterval: 100 * time.Millisecond,
		Clock:          clock,
	})
	testutil.AssertNoError(t, err)

	limiter, err := Wrap(inner)
	testutil.AssertNoError(t, err)

	admitted, retryAfter := limiter.TryConsume()
	testutil.AssertEqual(t, admitted, true)
	testutil.AssertEqual(t, retryAfter, 0)

	admitted, retryAfter = limiter.TryConsume()
	testutil.AssertEqual(t, admitted, false)
	testutil.AssertEqual(t, retryAfter, 100*time.Millisecond)
}

func TestConcurrentConsume(t *testing.T) {
	const capacity = 64

	// Frozen clock: no refill can occur, so exactly capacity requests
	// may be admitted no matter how the goroutines interleave.
	clock := testutil.NewMockClock(time.Now())
	inner, err := tokenbucket.NewWithConfig(tokenbucket.Config{
		Capacity:       capacity,
		RefillInterval: time.Hour,
		Clock:          clock,
	})
	testutil.AssertNoError(t, err)

	limiter, err := Wrap(inner)
	testutil.AssertNoError(t, err)

	var admitted atomic.Int64
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if ok, _ := limiter.TryConsume(); ok {
					admitted.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, admitted.Load(), int64(capacity))
}
