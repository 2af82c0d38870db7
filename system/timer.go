package system

import (
	"time"

	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/parameter"
)

// TimerSystem advances the world scheduler, running due continuations
type TimerSystem struct {
	ctx *Context
}

// NewTimerSystem creates a timer system
func NewTimerSystem(ctx *Context) engine.System {
	return &TimerSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

// Update drains continuations due within dt
func (s *TimerSystem) Update(dt time.Duration) {
	if s.ctx.Ledger.Decided() {
		return
	}
	s.ctx.World.Scheduler.Advance(dt)
}
