package engine

import (
	"sync"
	"time"
)

// TimeSource abstracts wall time for input expiry and tick scheduling
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the wall clock; readings carry the monotonic component
type SystemTime struct{}

func NewSystemTime() SystemTime { return SystemTime{} }

func (SystemTime) Now() time.Time { return time.Now() }

// ManualTime only moves when told to; used by tests and scripted runs
type ManualTime struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set jumps to t, backwards included
func (m *ManualTime) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves forward by d and returns the new time
func (m *ManualTime) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}
