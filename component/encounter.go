package component

import (
	"time"

	"github.com/lixenwraith/shuriken/vmath"
)

// MonsterComponent tags a monster crossing the field
type MonsterComponent struct {
	SpawnY    float64
	Traversal time.Duration
}

// ProjectileComponent tags a thrown projectile
type ProjectileComponent struct {
	Origin    vmath.Vec2
	Direction vmath.Vec2 // Unit vector
	Target    vmath.Vec2
}

// PlayerComponent tags the single player entity
type PlayerComponent struct{}
