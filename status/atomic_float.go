package status

import (
	"math"
	"strconv"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as its bit pattern
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the gauge
func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Load reads the gauge
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// String formats the gauge with one decimal, as shown in the overlay
func (f *AtomicFloat) String() string {
	return strconv.FormatFloat(f.Load(), 'f', 1, 64)
}
