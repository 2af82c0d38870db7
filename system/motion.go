package system

import (
	"time"

	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/parameter"
)

// MotionSystem advances scheduled linear motions
// Arrival side effects belong to the scheduler continuation, not to this system
type MotionSystem struct {
	ctx *Context
}

// NewMotionSystem creates a motion system
func NewMotionSystem(ctx *Context) engine.System {
	return &MotionSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update steps every motion and writes the new position
func (s *MotionSystem) Update(dt time.Duration) {
	if s.ctx.Ledger.Decided() {
		return
	}
	w := s.ctx.World
	for _, e := range w.Motions.All() {
		m, _ := w.Motions.Get(e)
		t, ok := w.Transforms.Get(e)
		if !ok {
			w.Motions.Remove(e)
			continue
		}
		pos, done := m.Step(dt)
		t.Previous = t.Position
		t.Position = pos
		w.Transforms.Set(e, t)
		if done {
			w.Motions.Remove(e)
		}
	}
}
