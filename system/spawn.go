package system

import (
	"time"

	"github.com/lixenwraith/shuriken/component"
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/event"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/physics"
	"github.com/lixenwraith/shuriken/vmath"
)

// SpawnSystem sends monsters across the field from right to left
// Spawns run as a repeating scheduler task; a monster reaching the left edge loses the round
type SpawnSystem struct {
	ctx   *Context
	owner core.Entity // Scheduler owner for the repeating spawn task
}

// NewSpawnSystem creates a spawner; call Start to begin spawning
func NewSpawnSystem(ctx *Context) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

// Start spawns one monster now and then one every SpawnInterval until the world is cleared
func (s *SpawnSystem) Start() {
	if s.owner != 0 {
		return
	}
	s.owner = s.ctx.World.CreateEntity()
	s.ctx.World.Scheduler.Every(0, parameter.SpawnInterval, s.owner, func() {
		s.Spawn()
	})
}

// Stop cancels the repeating spawn task
func (s *SpawnSystem) Stop() {
	if s.owner == 0 {
		return
	}
	s.ctx.World.DestroyEntity(s.owner)
	s.owner = 0
}

// Spawn creates one monster with a random row and crossing time
func (s *SpawnSystem) Spawn() core.Entity {
	ctx := s.ctx
	if ctx.Ledger.Decided() {
		return 0
	}

	size := vmath.V2(ctx.Sizes.MonsterW, ctx.Sizes.MonsterH)
	half := size.Scale(0.5)
	y := ctx.Rand.Range(half.Y, ctx.Field.Y-half.Y)
	traversal := ctx.Rand.Duration(parameter.MonsterTraversalMin, parameter.MonsterTraversalMax)

	start := vmath.V2(ctx.Field.X+half.X, y)
	end := vmath.V2(-half.X, y)

	e := place(ctx, core.KindMonster, physics.MonsterBody, size, start)
	ctx.World.Monsters.Set(e, component.MonsterComponent{SpawnY: y, Traversal: traversal})
	if traversal > 0 {
		b, _ := ctx.World.Bodies.Get(e)
		b.Velocity = end.Sub(start).Scale(1 / traversal.Seconds())
		ctx.World.Bodies.Set(e, b)
	}
	ctx.World.MoveTo(e, end, traversal, func() {
		s.reachedEdge(e)
	})

	ctx.Queue.Emit(event.EventMonsterSpawned, &event.MonsterSpawnedPayload{
		Entity:    e,
		Y:         y,
		Traversal: traversal.Seconds(),
	})
	ctx.logger().Printf("monster %d spawned y=%.1f traversal=%v", e, y, traversal.Round(time.Millisecond))
	return e
}

// reachedEdge is the arrival continuation of a monster: it leaves the field and the round is lost
func (s *SpawnSystem) reachedEdge(e core.Entity) {
	ctx := s.ctx
	ctx.World.DestroyEntity(e)
	if !ctx.Ledger.Decide(false) {
		return
	}
	ctx.logger().Printf("monster %d reached the edge", e)
	ctx.Queue.Emit(event.EventEncounterLost, &event.OutcomePayload{MonstersDestroyed: ctx.Ledger.Kills()})
}
