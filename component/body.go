package component

import (
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/vmath"
)

// BodyComponent is a gravity-free physics shape used only for contact reporting
type BodyComponent struct {
	Size          vmath.Vec2    // Rectangle extent centered on the transform
	Category      core.Category // What this body is
	ContactMask   core.Category // Which categories produce contact events with it
	CollisionMask core.Category // Which categories it would push; always none here
	Velocity      vmath.Vec2    // Informational, derived from scheduled motion
	Precise       bool          // Continuous detection for fast movers
}
