package system

import (
	"github.com/lixenwraith/shuriken/component"
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/event"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/physics"
	"github.com/lixenwraith/shuriken/vmath"
)

type testLedger struct {
	kills   int
	decided bool
	won     bool
}

func (l *testLedger) AddKill() int {
	l.kills++
	return l.kills
}

func (l *testLedger) Kills() int    { return l.kills }
func (l *testLedger) Decided() bool { return l.decided }

func (l *testLedger) Decide(won bool) bool {
	if l.decided {
		return false
	}
	l.decided = true
	l.won = won
	return true
}

func newTestContext() (*Context, *testLedger) {
	ledger := &testLedger{}
	ctx := &Context{
		World:  engine.NewWorld(),
		Queue:  event.NewQueue(),
		Ledger: ledger,
		Rand:   vmath.NewRand(42),
		Field:  vmath.V2(480, 320),
		Sizes:  parameter.PixelSizes,
	}
	SpawnPlayer(ctx)
	return ctx, ledger
}

func addSystems(ctx *Context) {
	ctx.World.AddSystem(NewContactSystem(ctx))
	ctx.World.AddSystem(NewTimerSystem(ctx))
	ctx.World.AddSystem(NewMotionSystem(ctx))
}

// placePair creates an overlapping monster and projectile away from other bodies
func placePair(ctx *Context, at vmath.Vec2) (core.Entity, core.Entity) {
	size := vmath.V2(10, 10)
	m := place(ctx, core.KindMonster, physics.MonsterBody, size, at)
	ctx.World.Monsters.Set(m, component.MonsterComponent{SpawnY: at.Y})
	p := place(ctx, core.KindProjectile, physics.ProjectileBody, size, at)
	ctx.World.Projectiles.Set(p, component.ProjectileComponent{Origin: at})
	return m, p
}

func countEvents(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
