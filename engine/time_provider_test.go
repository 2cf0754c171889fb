package engine

import (
	"testing"
	"time"
)

func TestMonotonicClock(t *testing.T) {
	clock := NewMonotonicClock()

	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clock.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockClock(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockClock(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	got := mock.Advance(1 * time.Hour)
	expected := newTime.Add(1 * time.Hour)
	if !got.Equal(expected) || !mock.Now().Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, mock.Now())
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected = newTime.Add(1*time.Hour + 30*time.Minute + 15*time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after multiple advances, got %v", expected, now)
	}
}

func TestClockInterface(t *testing.T) {
	var _ Clock = NewMonotonicClock()
	var _ Clock = NewMockClock(time.Now())
	var _ Clock = NewPausableClock(NewMockClock(time.Now()))
}
