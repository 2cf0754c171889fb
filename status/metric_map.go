package status

import (
	"sort"
	"sync"
)

// MetricMap holds named metrics of one kind and knows how to print them
// Lookups take the lock once; the loop then writes through the cached pointer
type MetricMap[T any] struct {
	mu     sync.RWMutex
	items  map[string]*T
	format func(*T) string
}

// NewMetricMap creates a map whose values are rendered with format
func NewMetricMap[T any](format func(*T) string) *MetricMap[T] {
	return &MetricMap[T]{
		items:  make(map[string]*T),
		format: format,
	}
}

// Get returns the metric for key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// AppendLines appends "key: value" for every metric in key order
func (m *MetricMap[T]) AppendLines(dst []string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst = append(dst, k+": "+m.format(m.items[k]))
	}
	return dst
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
