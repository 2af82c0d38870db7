package system

import (
	"io"
	"log"

	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/event"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/vmath"
)

// Ledger tracks a round's kill counter and its single outcome
type Ledger interface {
	// AddKill increments the counter and returns the new value
	AddKill() int

	// Kills returns the current counter
	Kills() int

	// Decide records the outcome; only the first call returns true
	Decide(won bool) bool

	// Decided reports whether an outcome has been recorded
	Decided() bool
}

// CuePlayer plays named sound cues without blocking
type CuePlayer interface {
	PlayCue(name string)
}

// Context is the state shared by the systems of one encounter
type Context struct {
	World  *engine.World
	Queue  *event.Queue
	Ledger Ledger
	Rand   *vmath.Rand
	Field  vmath.Vec2 // Scene width and height
	Sizes  parameter.SpriteSizes
	Logger *log.Logger

	Player core.Entity
}

// logger returns the context logger or a discarding one
func (c *Context) logger() *log.Logger {
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return c.Logger
}
