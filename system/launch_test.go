package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/event"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/vmath"
)

func TestLaunchForwardCreatesProjectile(t *testing.T) {
	ctx, _ := newTestContext()
	launcher := NewLaunchSystem(ctx)

	e, ok := launcher.Launch([]vmath.Vec2{vmath.V2(300, 100)})
	if !ok {
		t.Fatal("Expected forward launch to succeed")
	}

	proj, ok := ctx.World.Projectiles.Get(e)
	if !ok {
		t.Fatal("Expected projectile component")
	}
	if math.Abs(proj.Direction.Len()-1) > 1e-9 {
		t.Errorf("Expected unit direction, got length %f", proj.Direction.Len())
	}
	if proj.Origin != PlayerAnchor(ctx.Field) {
		t.Errorf("Expected origin at player %v, got %v", PlayerAnchor(ctx.Field), proj.Origin)
	}
	if d := proj.Target.Sub(proj.Origin).Len(); math.Abs(d-parameter.ShootDistance) > 1e-6 {
		t.Errorf("Expected target %v away, got %f", parameter.ShootDistance, d)
	}

	body, _ := ctx.World.Bodies.Get(e)
	if body.Velocity.X < 0 {
		t.Errorf("Expected non-negative x velocity, got %f", body.Velocity.X)
	}
	if !body.Precise || body.Category != core.CategoryProjectile || body.ContactMask != core.CategoryMonster {
		t.Errorf("Expected projectile body profile, got %+v", body)
	}

	events := ctx.Queue.Consume()
	if n := countEvents(events, event.EventSoundRequest); n != 1 {
		t.Fatalf("Expected exactly 1 sound request, got %d", n)
	}
	if p := events[0].Payload.(*event.SoundRequestPayload); p.Cue != core.CuePewPew {
		t.Errorf("Expected cue %q, got %q", core.CuePewPew, p.Cue)
	}
}

func TestLaunchBackwardIsRejected(t *testing.T) {
	ctx, _ := newTestContext()
	launcher := NewLaunchSystem(ctx)
	before := ctx.World.EntityCount()

	if _, ok := launcher.Launch([]vmath.Vec2{vmath.V2(10, 300)}); ok {
		t.Error("Expected backward launch to be rejected")
	}
	if ctx.World.EntityCount() != before {
		t.Errorf("Expected no new entities, got %d", ctx.World.EntityCount()-before)
	}
	if ctx.Queue.Len() != 0 {
		t.Errorf("Expected no events, got %d", ctx.Queue.Len())
	}
}

func TestLaunchRejectsEmptyTouches(t *testing.T) {
	ctx, _ := newTestContext()

	if _, ok := NewLaunchSystem(ctx).Launch(nil); ok {
		t.Error("Expected empty touches to be a no-op")
	}
	if ctx.Queue.Len() != 0 {
		t.Errorf("Expected no events, got %d", ctx.Queue.Len())
	}
}

func TestLaunchTouchOnPlayerFiresForward(t *testing.T) {
	ctx, _ := newTestContext()

	e, ok := NewLaunchSystem(ctx).Launch([]vmath.Vec2{PlayerAnchor(ctx.Field)})
	if !ok {
		t.Fatal("Expected touch on the player to launch")
	}
	proj, _ := ctx.World.Projectiles.Get(e)
	if proj.Direction != vmath.V2(1, 0) {
		t.Errorf("Expected direction (1,0), got %v", proj.Direction)
	}
	body, _ := ctx.World.Bodies.Get(e)
	if body.Velocity.X <= 0 || body.Velocity.Y != 0 {
		t.Errorf("Expected velocity along +x, got %v", body.Velocity)
	}
}

func TestLaunchVerticalIsAllowed(t *testing.T) {
	ctx, _ := newTestContext()
	anchor := PlayerAnchor(ctx.Field)
	if _, ok := NewLaunchSystem(ctx).Launch([]vmath.Vec2{vmath.V2(anchor.X, 0)}); !ok {
		t.Error("Expected straight-up launch (offset x == 0) to succeed")
	}
}

func TestLaunchUsesOnlyFirstTouch(t *testing.T) {
	ctx, _ := newTestContext()
	launcher := NewLaunchSystem(ctx)

	_, ok := launcher.Launch([]vmath.Vec2{vmath.V2(0, 0), vmath.V2(400, 160)})
	if ok {
		t.Error("Expected first (backward) touch to decide the launch")
	}

	e, ok := launcher.Launch([]vmath.Vec2{vmath.V2(400, 160), vmath.V2(0, 0)})
	if !ok {
		t.Fatal("Expected forward first touch to launch")
	}
	if ctx.World.Projectiles.Count() != 1 {
		t.Errorf("Expected exactly 1 projectile, got %d", ctx.World.Projectiles.Count())
	}
	proj, _ := ctx.World.Projectiles.Get(e)
	if proj.Direction.Y != 0 {
		t.Errorf("Expected horizontal direction, got %v", proj.Direction)
	}
}

func TestProjectileRemovedOnArrival(t *testing.T) {
	ctx, _ := newTestContext()
	addSystems(ctx)
	e, _ := NewLaunchSystem(ctx).Launch([]vmath.Vec2{vmath.V2(400, 160)})

	ctx.World.Update(time.Second)
	if !ctx.World.Alive(e) {
		t.Fatal("Expected projectile alive mid-flight")
	}
	ctx.World.Update(time.Second)
	if ctx.World.Alive(e) {
		t.Error("Expected projectile removed after flight time")
	}
}

func TestLaunchRejectedAfterOutcome(t *testing.T) {
	ctx, ledger := newTestContext()
	ledger.Decide(false)
	if _, ok := NewLaunchSystem(ctx).Launch([]vmath.Vec2{vmath.V2(400, 160)}); ok {
		t.Error("Expected launches to be ignored once the round is decided")
	}
}
