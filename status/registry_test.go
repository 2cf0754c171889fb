package status

import (
	"sync"
	"testing"
	"unicode/utf8"
)

func TestMetricMapCachesPointer(t *testing.T) {
	m := NewMetricMap((*AtomicFloat).String)
	a := m.Get("fps")
	b := m.Get("fps")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

// TestMetricMapConcurrentRegistration verifies racing Gets agree on one pointer
func TestMetricMapConcurrentRegistration(t *testing.T) {
	m := NewMetricMap((*AtomicFloat).String)
	ptrs := make([]*AtomicFloat, 16)
	var wg sync.WaitGroup
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("loop.fps")
		}(i)
	}
	wg.Wait()
	for i, p := range ptrs {
		if p != ptrs[0] {
			t.Fatalf("goroutine %d got a distinct pointer", i)
		}
	}
}

func TestAtomicFloatFormat(t *testing.T) {
	var f AtomicFloat
	if f.String() != "0.0" {
		t.Errorf("Zero value should format as 0.0, got %q", f.String())
	}
	f.Store(59.94)
	if f.Load() != 59.94 || f.String() != "59.9" {
		t.Errorf("Unexpected gauge %v / %q", f.Load(), f.String())
	}
}

func TestAtomicStringClipsOnRuneBoundary(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should load empty")
	}

	s.Store("0123456789abcdefghijKLMNOP")
	if got := s.Load(); got != "0123456789abcdefghij" {
		t.Errorf("Expected clip to %d cells, got %q", MaxStringWidth, got)
	}

	// 19 ASCII cells then two-byte runes; a byte cut at 20 would split the first
	s.Store("0123456789abcdefghiéé")
	got := s.Load()
	if !utf8.ValidString(got) {
		t.Fatalf("Clipped label is not valid UTF-8: %q", got)
	}
	if got != "0123456789abcdefghié" {
		t.Errorf("Unexpected clip %q", got)
	}
}

// TestRegistryLines verifies overlay formatting order
func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Floats.Get("loop.fps").Store(74.96)
	r.Ints.Get("fx.particles").Store(12)
	r.Ints.Get("fx.ambient").Store(3)
	r.Strings.Get("session.phase").Store("playing")
	r.Bools.Get("clock.paused").Store(true)

	want := []string{
		"session.phase: playing",
		"fx.ambient: 3",
		"fx.particles: 12",
		"loop.fps: 75.0",
		"clock.paused: true",
	}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if r.TotalCount() != 5 {
		t.Errorf("Expected 5 metrics, got %d", r.TotalCount())
	}
}
