// @focus: #sys { debug }
package status

import (
	"strconv"
	"sync/atomic"
)

// Registry groups the loop metrics by kind for the debug overlay
// The loop caches pointers at startup and writes atomics directly every frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap(func(b *atomic.Bool) string { return strconv.FormatBool(b.Load()) }),
		Ints:    NewMetricMap(func(i *atomic.Int64) string { return strconv.FormatInt(i.Load(), 10) }),
		Floats:  NewMetricMap((*AtomicFloat).String),
		Strings: NewMetricMap((*AtomicString).Load),
	}
}

// TotalCount returns the number of metrics across all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as "key: value", labels first, flags last
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	lines = r.Strings.AppendLines(lines)
	lines = r.Ints.AppendLines(lines)
	lines = r.Floats.AppendLines(lines)
	lines = r.Bools.AppendLines(lines)
	return lines
}
