// Package metrics provides in-memory runtime statistics collection.
package metrics

import (
	"math"
	"sort"
	"sync"
	"time"
)

// OperationMetrics holds aggregated metrics for a single operation.
type OperationMetrics struct {
	Count     int64
	Errors    int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// OperationSnapshot provides computed stats from raw metrics.
type OperationSnapshot struct {
	Name        string  `json:"name"`
	Count       int64   `json:"count"`
	Errors      int64   `json:"errors"`
	TotalTimeMs float64 `json:"total_time_ms"`
	AvgTimeMs   float64 `json:"avg_time_ms"`
	MinTimeMs   float64 `json:"min_time_ms"`
	MaxTimeMs   float64 `json:"max_time_ms"`
}

// Snapshot represents the full server statistics at a point in time.
type Snapshot struct {
	UptimeSeconds float64             `json:"uptime_seconds"`
	Operations    []OperationSnapshot `json:"operations"`
}

// Operation returns the snapshot for name, or nil if it was never recorded.
func (s Snapshot) Operation(name string) *OperationSnapshot {
	for i := range s.Operations {
		if s.Operations[i].Name == name {
			return &s.Operations[i]
		}
	}
	return nil
}

// Collector aggregates in-memory runtime statistics.
// All methods are thread-safe.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	ops       map[string]*OperationMetrics
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		ops:       make(map[string]*OperationMetrics),
	}
}

// getOrCreate returns existing metrics or creates new ones for an operation.
// Caller must hold write lock.
func (c *Collector) getOrCreate(op string) *OperationMetrics {
	m, ok := c.ops[op]
	if !ok {
		m = &OperationMetrics{MinTime: time.Duration(math.MaxInt64)}
		c.ops[op] = m
	}
	return m
}

// RecordTiming records timing for an operation.
func (c *Collector) RecordTiming(op string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(op)
	m.Count++
	m.TotalTime += duration

	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// RecordError counts a failed call of op. Timing is recorded separately.
func (c *Collector) RecordError(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.getOrCreate(op).Errors++
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// snapshotOp creates a snapshot for an operation.
func snapshotOp(name string, m *OperationMetrics) OperationSnapshot {
	snap := OperationSnapshot{
		Name:        name,
		Count:       m.Count,
		Errors:      m.Errors,
		TotalTimeMs: millis(m.TotalTime),
		MaxTimeMs:   millis(m.MaxTime),
	}
	if m.Count > 0 {
		snap.AvgTimeMs = snap.TotalTimeMs / float64(m.Count)
		snap.MinTimeMs = millis(m.MinTime)
	}
	return snap
}

// Snapshot returns a point-in-time snapshot of all metrics, sorted by operation name.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ops := make([]OperationSnapshot, 0, len(c.ops))
	for name, m := range c.ops {
		ops = append(ops, snapshotOp(name, m))
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })

	return Snapshot{
		UptimeSeconds: time.Since(c.startTime).Seconds(),
		Operations:    ops,
	}
}
