package component

import (
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/vmath"
)

// TransformComponent holds an entity's center position in scene coordinates
// Previous is the position before the last motion step, used for swept contact tests
type TransformComponent struct {
	Position vmath.Vec2
	Previous vmath.Vec2
}

// SpriteComponent describes what the renderers draw for an entity
type SpriteComponent struct {
	Kind core.Kind
	Size vmath.Vec2 // Full width and height
}

// HalfSize returns half the sprite extent, used for spawn insets and overlap tests
func (s SpriteComponent) HalfSize() vmath.Vec2 {
	return s.Size.Scale(0.5)
}
