package slidinglog

import (
	"testing"
	"time"
)

func BenchmarkTryConsume(b *testing.B) {
	limiter, err := New(1000, time.Millisecond)
	if err != nil {
		b.Fatalf("failed to create limiter: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limiter.TryConsume()
	}
}

func BenchmarkTryConsumeLargeQuota(b *testing.B) {
	limiter, err := New(100000, time.Second)
	if err != nil {
		b.Fatalf("failed to create limiter: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limiter.TryConsume()
	}
}
