package status

import (
	"sync/atomic"

	"github.com/mattn/go-runewidth"
)

// MaxStringWidth is the widest label, in terminal cells, the overlay shows
const MaxStringWidth = 20

// AtomicString is a short text label swapped atomically
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, clipped to MaxStringWidth cells on a rune boundary
func (s *AtomicString) Store(val string) {
	val = runewidth.Truncate(val, MaxStringWidth, "")
	s.ptr.Store(&val)
}

// Load returns the label, empty before the first Store
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
