package engine

import "time"

// FrameClock turns wall-clock readings into per-frame simulation deltas
// Deltas are clamped so a stalled frame cannot tunnel bodies past each other
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock starts a clock at the provider's current time
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns the time since the previous Tick, clamped to [0, maxDelta]
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset discards elapsed time, used after a pause such as a scene swap
func (c *FrameClock) Reset() {
	c.last = c.provider.Now()
}
