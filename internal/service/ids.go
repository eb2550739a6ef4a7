package service

import (
	"sync"
	"time"
)

// IDGenerator hands out event ids.
type IDGenerator interface {
	Next() int64
}

// ClockIDs derives ids from the wall clock in milliseconds. Two calls in the
// same millisecond, or a clock that steps backwards, still yield strictly
// increasing ids because each id is at least one above the previous one.
type ClockIDs struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewClockIDs returns a generator reading now. A nil now uses time.Now.
func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

// Next implements IDGenerator.
func (g *ClockIDs) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
