package scene

import (
	"math"
	"time"
)

// Transition is a horizontal flip from one scene to the next
// The outgoing scene folds to zero width over the first half, the incoming one unfolds over the second
type Transition struct {
	from, to Scene
	duration time.Duration
	elapsed  time.Duration
}

// NewTransition creates a flip lasting d
func NewTransition(from, to Scene, d time.Duration) *Transition {
	return &Transition{from: from, to: to, duration: d}
}

// Update advances the flip
func (t *Transition) Update(dt time.Duration) {
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

// Progress returns completion in [0, 1]
func (t *Transition) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// Done reports whether the flip finished
func (t *Transition) Done() bool {
	return t.Progress() >= 1
}

// To returns the incoming scene
func (t *Transition) To() Scene {
	return t.to
}

// View returns the visible side of the flip with its horizontal scale
func (t *Transition) View() View {
	p := t.Progress()
	v := t.to.View()
	if p < 0.5 {
		v = t.from.View()
	}
	v.ScaleX = math.Abs(1 - 2*p)
	return v
}
