package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/kedare/dryspot/internal/logger"
)

// Stats tracks how often and how long each cache operation ran in this process.
type Stats struct {
	mu         sync.Mutex
	operations map[string]int64
	totalTime  map[string]time.Duration
	maxTime    map[string]time.Duration
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Operations map[string]int64
	AvgTime    map[string]time.Duration
	MaxTime    map[string]time.Duration
}

func newStats() *Stats {
	return &Stats{
		operations: make(map[string]int64),
		totalTime:  make(map[string]time.Duration),
		maxTime:    make(map[string]time.Duration),
	}
}

// recordOperation records an operation with its duration.
func (s *Stats) recordOperation(op string, duration time.Duration) {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.operations[op]++
	s.totalTime[op] += duration

	if duration > s.maxTime[op] {
		s.maxTime[op] = duration
	}
}

// Snapshot copies the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	snapshot := StatsSnapshot{
		Operations: make(map[string]int64),
		AvgTime:    make(map[string]time.Duration),
		MaxTime:    make(map[string]time.Duration),
	}

	if s == nil {
		return snapshot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for op, count := range s.operations {
		snapshot.Operations[op] = count
		snapshot.AvgTime[op] = s.totalTime[op] / time.Duration(count)
		snapshot.MaxTime[op] = s.maxTime[op]
	}

	return snapshot
}

// Stats returns the operation statistics of this process.
func (c *Cache) Stats() StatsSnapshot {
	if c == nil {
		return (*Stats)(nil).Snapshot()
	}

	return c.stats.Snapshot()
}

// LogStats logs per-operation timings at debug level.
func (c *Cache) LogStats() {
	snapshot := c.Stats()
	if len(snapshot.Operations) == 0 {
		return
	}

	ops := make([]string, 0, len(snapshot.Operations))
	for op := range snapshot.Operations {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	for _, op := range ops {
		logger.Log.Debugf("Cache %s: count=%d avg=%v max=%v", op, snapshot.Operations[op],
			snapshot.AvgTime[op].Round(time.Microsecond), snapshot.MaxTime[op].Round(time.Microsecond))
	}
}
