package engine

import (
	"testing"
	"time"
)

func TestPausableClockAdvancesWithRealTime(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	real := NewMockClock(start)
	pc := NewPausableClock(real)

	real.Advance(250 * time.Millisecond)
	if got := pc.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms of game time, got %v", got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	real := NewMockClock(start)
	pc := NewPausableClock(real)

	real.Advance(100 * time.Millisecond)
	pc.Pause()
	frozen := pc.Now()

	real.Advance(5 * time.Second)
	if !pc.Now().Equal(frozen) {
		t.Errorf("Expected game time frozen at %v, got %v", frozen, pc.Now())
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected ongoing pause of 5s, got %v", got)
	}

	pc.Resume()
	real.Advance(100 * time.Millisecond)
	if got := pc.Now().Sub(start); got != 200*time.Millisecond {
		t.Errorf("Expected 200ms of game time after resume, got %v", got)
	}
	if !pc.RealTime().Equal(real.Now()) {
		t.Errorf("RealTime should follow the underlying clock")
	}
}

func TestPausableClockToggleIdempotent(t *testing.T) {
	real := NewMockClock(time.Now())
	pc := NewPausableClock(real)

	if !pc.Toggle() || !pc.IsPaused() {
		t.Fatal("Expected first toggle to pause")
	}
	// Redundant pause must not restart the pause window
	real.Advance(time.Second)
	pc.Pause()
	real.Advance(time.Second)
	if got := pc.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Expected 2s pause, got %v", got)
	}

	if pc.Toggle() || pc.IsPaused() {
		t.Fatal("Expected second toggle to resume")
	}
	pc.Resume()
	if got := pc.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Redundant resume changed pause total: %v", got)
	}
}
