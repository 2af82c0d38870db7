package engine

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/shuriken/vmath"
)

// Motion is a linear move from one point to another over a fixed duration
// The tween drives progress in [0, 1]; positions are interpolated in float64
type Motion struct {
	From     vmath.Vec2
	To       vmath.Vec2
	Duration time.Duration

	progress *gween.Tween
	done     bool
}

// NewMotion creates a linear motion; a non-positive duration completes on the first step
func NewMotion(from, to vmath.Vec2, d time.Duration) *Motion {
	m := &Motion{From: from, To: to, Duration: d}
	if d > 0 {
		m.progress = gween.New(0, 1, float32(d.Seconds()), ease.Linear)
	}
	return m
}

// Step advances the motion by dt and returns the new position and whether it reached To
func (m *Motion) Step(dt time.Duration) (vmath.Vec2, bool) {
	if m.done || m.progress == nil {
		m.done = true
		return m.To, true
	}
	p, finished := m.progress.Update(float32(dt.Seconds()))
	if finished {
		m.done = true
		return m.To, true
	}
	return vmath.Lerp(m.From, m.To, float64(p)), false
}

// Done reports whether the motion has reached its target
func (m *Motion) Done() bool {
	return m.done
}
