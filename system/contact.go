package system

import (
	"time"

	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/event"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/physics"
)

// ContactSystem resolves monster/projectile contacts reported by the contact world
type ContactSystem struct {
	ctx      *Context
	contacts *physics.ContactWorld
}

// NewContactSystem creates a contact resolver
func NewContactSystem(ctx *Context) *ContactSystem {
	return &ContactSystem{
		ctx:      ctx,
		contacts: physics.NewContactWorld(),
	}
}

var _ engine.System = (*ContactSystem)(nil)

// Priority returns the system's priority
func (s *ContactSystem) Priority() int {
	return parameter.PriorityContact
}

// Update detects contacts at the current positions and resolves them in order
func (s *ContactSystem) Update(time.Duration) {
	if s.ctx.Ledger.Decided() {
		return
	}
	for _, c := range s.contacts.Step(s.ctx.World) {
		s.Resolve(c)
		if s.ctx.Ledger.Decided() {
			return
		}
	}
}

// Resolve removes a live monster/projectile pair and counts the kill
// Any other pair, or a pair with an already removed member, is a no-op
func (s *ContactSystem) Resolve(c physics.Contact) bool {
	ctx := s.ctx
	if c.CatA != core.CategoryMonster || c.CatB != core.CategoryProjectile {
		return false
	}
	w := ctx.World
	if !w.Alive(c.A) || !w.Alive(c.B) {
		return false
	}

	w.DestroyEntity(c.A)
	w.DestroyEntity(c.B)
	count := ctx.Ledger.AddKill()
	ctx.Queue.Emit(event.EventMonsterDestroyed, &event.MonsterDestroyedPayload{
		Monster:    c.A,
		Projectile: c.B,
		Count:      count,
	})

	if count > parameter.WinThreshold && ctx.Ledger.Decide(true) {
		ctx.logger().Printf("win threshold passed with %d kills", count)
		ctx.Queue.Emit(event.EventEncounterWon, &event.OutcomePayload{MonstersDestroyed: count})
	}
	return true
}
