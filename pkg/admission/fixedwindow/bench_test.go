package fixedwindow

import (
	"testing"
	"time"
)

func BenchmarkTryConsume(b *testing.B) {
	limiter, err := New(1000, time.Second)
	if err != nil {
		b.Fatalf("failed to create limiter: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limiter.TryConsume()
	}
}

func BenchmarkTryConsumeRejecting(b *testing.B) {
	limiter, err := New(1, time.Hour)
	if err != nil {
		b.Fatalf("failed to create limiter: %v", err)
	}
	limiter.TryConsume()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limiter.TryConsume()
	}
}
