package system

import (
	"github.com/lixenwraith/shuriken/component"
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/event"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/physics"
	"github.com/lixenwraith/shuriken/vmath"
)

// LaunchSystem throws projectiles from the player toward touch points
type LaunchSystem struct {
	ctx *Context
}

// NewLaunchSystem creates a launcher bound to the context's player
func NewLaunchSystem(ctx *Context) *LaunchSystem {
	return &LaunchSystem{ctx: ctx}
}

// Launch fires at the first touch point
// Returns false without side effects when there is no touch, the round is over,
// or the touch is behind the player
// A touch exactly on the player fires straight ahead
func (s *LaunchSystem) Launch(touches []vmath.Vec2) (core.Entity, bool) {
	ctx := s.ctx
	if len(touches) == 0 || ctx.Ledger.Decided() {
		return 0, false
	}
	pt, ok := ctx.World.Transforms.Get(ctx.Player)
	if !ok {
		return 0, false
	}
	origin := pt.Position

	offset := touches[0].Sub(origin)
	if offset.X < 0 {
		return 0, false
	}

	dir := vmath.V2(1, 0)
	if !offset.IsZero() {
		dir = offset.Normalize()
	}
	target := origin.Add(dir.Scale(parameter.ShootDistance))

	size := vmath.V2(ctx.Sizes.ProjectileW, ctx.Sizes.ProjectileH)
	e := place(ctx, core.KindProjectile, physics.ProjectileBody, size, origin)
	ctx.World.Projectiles.Set(e, component.ProjectileComponent{
		Origin:    origin,
		Direction: dir,
		Target:    target,
	})
	b, _ := ctx.World.Bodies.Get(e)
	b.Velocity = dir.Scale(parameter.ShootDistance / parameter.ProjectileFlight.Seconds())
	ctx.World.Bodies.Set(e, b)

	w := ctx.World
	w.MoveTo(e, target, parameter.ProjectileFlight, func() {
		w.DestroyEntity(e)
	})

	ctx.Queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Cue: core.CuePewPew})
	ctx.Queue.Emit(event.EventProjectileLaunched, &event.ProjectileLaunchedPayload{
		Entity:    e,
		Origin:    origin,
		Direction: dir,
	})
	return e, true
}
