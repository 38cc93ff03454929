package testutil

import (
	"testing"
	"time"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	AssertEqual(t, clock.Now(), start)

	clock.Advance(250 * time.Millisecond)
	AssertEqual(t, clock.Now(), start.Add(250*time.Millisecond))

	later := start.Add(time.Hour)
	clock.Set(later)
	AssertEqual(t, clock.Now(), later)
}

func TestMockClockZeroStart(t *testing.T) {
	clock := NewMockClock(time.Time{})
	if clock.Now().IsZero() {
		t.Error("zero start should default to current time")
	}
}
