package infra

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Metrics is an in-memory metrics sink: counters, gauges, and durations
// keyed by name plus a sorted tag map. It stands in for a real metrics
// backend and is replaceable behind the interface.
type Metrics interface {
	IncrementCounter(name string, tags map[string]string)
	SetGauge(name string, value float64, tags map[string]string)
	RecordDuration(name string, d time.Duration, tags map[string]string)
}

// MemoryMetrics implements Metrics with plain maps behind one mutex.
type MemoryMetrics struct {
	mu        sync.Mutex
	counters  map[string]int64
	gauges    map[string]float64
	durations map[string][]time.Duration
}

// NewMemoryMetrics creates an empty in-memory sink.
func NewMemoryMetrics() *MemoryMetrics {
	return &MemoryMetrics{
		counters:  make(map[string]int64),
		gauges:    make(map[string]float64),
		durations: make(map[string][]time.Duration),
	}
}

func (m *MemoryMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[seriesKey(name, tags)]++
}

func (m *MemoryMetrics) SetGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[seriesKey(name, tags)] = value
}

func (m *MemoryMetrics) RecordDuration(name string, d time.Duration, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := seriesKey(name, tags)
	m.durations[key] = append(m.durations[key], d)
}

// Counter returns the current value for a series (0 when unseen).
func (m *MemoryMetrics) Counter(name string, tags map[string]string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[seriesKey(name, tags)]
}

// Gauge returns the last value set for a series.
func (m *MemoryMetrics) Gauge(name string, tags map[string]string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gauges[seriesKey(name, tags)]
}

// Durations returns recorded durations for a series.
func (m *MemoryMetrics) Durations(name string, tags map[string]string) []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.durations[seriesKey(name, tags)]
	out := make([]time.Duration, len(src))
	copy(out, src)
	return out
}

// Snapshot returns a flat view of all counters (for demo output).
func (m *MemoryMetrics) Snapshot() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out
}

// seriesKey builds a stable "name{k=v,k=v}" key with sorted tags.
func seriesKey(name string, tags map[string]string) string {
	if len(tags) == 0 {
		return name
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%s", k, tags[k])
	}
	b.WriteByte('}')
	return b.String()
}
