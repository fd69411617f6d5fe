package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/diamond-run/parameter"
)

// TickSource drives the loop once per frame with the elapsed wall time
type TickSource interface {
	Run(ctx context.Context, tick func(elapsed time.Duration)) error
}

// TickerSource is a time.Ticker based TickSource
type TickerSource struct {
	Interval time.Duration
	Time     TimeSource
	// Dispatch runs fn on the owning goroutine; nil calls fn inline
	Dispatch func(fn func())
}

// NewTickerSource creates a source at the frame interval dispatching through dispatch
func NewTickerSource(dispatch func(fn func())) *TickerSource {
	return &TickerSource{
		Interval: parameter.FrameUpdateInterval,
		Time:     NewSystemTime(),
		Dispatch: dispatch,
	}
}

// Run blocks until ctx is cancelled, then returns ctx.Err()
func (s *TickerSource) Run(ctx context.Context, tick func(elapsed time.Duration)) error {
	interval := s.Interval
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	ts := s.Time
	if ts == nil {
		ts = NewSystemTime()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := ts.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := ts.Now()
			elapsed := now.Sub(last)
			last = now
			if s.Dispatch == nil {
				tick(elapsed)
				continue
			}
			s.Dispatch(func() {
				// Host may have detached while the dispatch was queued
				if ctx.Err() == nil {
					tick(elapsed)
				}
			})
		}
	}
}
