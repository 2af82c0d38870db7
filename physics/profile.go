package physics

import (
	"github.com/lixenwraith/shuriken/component"
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/vmath"
)

// BodyProfile defines how a kind of body participates in contact reporting
// Profiles are pre-defined as package variables
type BodyProfile struct {
	Category      core.Category
	ContactMask   core.Category
	CollisionMask core.Category
	Precise       bool
}

// MonsterBody reports contacts with projectiles only
var MonsterBody = BodyProfile{
	Category:      core.CategoryMonster,
	ContactMask:   core.CategoryProjectile,
	CollisionMask: core.CategoryNone,
}

// ProjectileBody reports contacts with monsters only and uses swept tests
var ProjectileBody = BodyProfile{
	Category:      core.CategoryProjectile,
	ContactMask:   core.CategoryMonster,
	CollisionMask: core.CategoryNone,
	Precise:       true,
}

// PlayerBody exists in the world but never reports contacts
var PlayerBody = BodyProfile{
	Category:      core.CategoryPlayer,
	ContactMask:   core.CategoryNone,
	CollisionMask: core.CategoryNone,
}

// NewBody builds a body component of the given size from a profile
func NewBody(p BodyProfile, size vmath.Vec2) component.BodyComponent {
	return component.BodyComponent{
		Size:          size,
		Category:      p.Category,
		ContactMask:   p.ContactMask,
		CollisionMask: p.CollisionMask,
		Precise:       p.Precise,
	}
}
