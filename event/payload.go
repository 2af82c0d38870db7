package event

import (
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/vmath"
)

// SoundRequestPayload names the cue to play
type SoundRequestPayload struct {
	Cue string
}

// ProjectileLaunchedPayload describes a launch
type ProjectileLaunchedPayload struct {
	Entity    core.Entity
	Origin    vmath.Vec2
	Direction vmath.Vec2
}

// MonsterSpawnedPayload describes a spawn
type MonsterSpawnedPayload struct {
	Entity    core.Entity
	Y         float64
	Traversal float64 // seconds
}

// MonsterDestroyedPayload carries the resolved pair and the counter after the increment
type MonsterDestroyedPayload struct {
	Monster    core.Entity
	Projectile core.Entity
	Count      int
}

// OutcomePayload carries the kill counter at the moment an outcome was decided
type OutcomePayload struct {
	MonstersDestroyed int
}
