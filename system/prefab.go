package system

import (
	"github.com/lixenwraith/shuriken/component"
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/physics"
	"github.com/lixenwraith/shuriken/vmath"
)

// place attaches transform, sprite and body to a new entity at pos
func place(ctx *Context, kind core.Kind, profile physics.BodyProfile, size, pos vmath.Vec2) core.Entity {
	w := ctx.World
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: pos, Previous: pos})
	w.Sprites.Set(e, component.SpriteComponent{Kind: kind, Size: size})
	w.Bodies.Set(e, physics.NewBody(profile, size))
	return e
}

// PlayerAnchor returns the player's fixed position in a field of the given size
func PlayerAnchor(field vmath.Vec2) vmath.Vec2 {
	return vmath.V2(field.X*parameter.PlayerAnchorX, field.Y*parameter.PlayerAnchorY)
}

// SpawnPlayer creates the encounter's single player and records it on the context
func SpawnPlayer(ctx *Context) core.Entity {
	size := vmath.V2(ctx.Sizes.PlayerW, ctx.Sizes.PlayerH)
	e := place(ctx, core.KindPlayer, physics.PlayerBody, size, PlayerAnchor(ctx.Field))
	ctx.World.Players.Set(e, component.PlayerComponent{})
	ctx.Player = e
	return e
}
