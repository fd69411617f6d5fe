package engine

import "time"

// AnimationClock accumulates clamped frame deltas; it never moves backwards
type AnimationClock struct {
	elapsed  time.Duration
	maxDelta time.Duration
}

// NewAnimationClock creates a clock that clamps every advance to maxDelta
func NewAnimationClock(maxDelta time.Duration) *AnimationClock {
	return &AnimationClock{maxDelta: maxDelta}
}

// Clamp bounds a raw frame delta to [0, maxDelta]
func (c *AnimationClock) Clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		return c.maxDelta
	}
	return d
}

// Advance adds the clamped delta and returns it
func (c *AnimationClock) Advance(d time.Duration) time.Duration {
	d = c.Clamp(d)
	c.elapsed += d
	return d
}

// Elapsed returns total animation time
func (c *AnimationClock) Elapsed() time.Duration {
	return c.elapsed
}
