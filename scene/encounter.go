package scene

import (
	"io"
	"log"
	"time"

	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/event"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/system"
	"github.com/lixenwraith/shuriken/vmath"
)

// EncounterConfig carries what an encounter needs from its host
type EncounterConfig struct {
	Field  vmath.Vec2 // Scene width and height
	Sizes  parameter.SpriteSizes
	Rand   *vmath.Rand
	Audio  system.CuePlayer // May be nil
	Logger *log.Logger      // May be nil
}

// Encounter is the playing scene: monsters cross, the player throws, contacts score
// All methods must be called from the logic goroutine
type Encounter struct {
	cfg     EncounterConfig
	world   *engine.World
	queue   *event.Queue
	router  *event.Router[*engine.World]
	session *Session
	ctx     *system.Context

	spawner  *system.SpawnSystem
	launcher *system.LaunchSystem

	frame int64
}

// NewEncounter builds a fresh round: new world, zero counter, player placed, spawner armed
func NewEncounter(cfg EncounterConfig) *Encounter {
	if cfg.Rand == nil {
		cfg.Rand = vmath.NewRand(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	cfg.Logger = log.New(cfg.Logger.Writer(), "[encounter] ", cfg.Logger.Flags())

	e := &Encounter{
		cfg:     cfg,
		world:   engine.NewWorld(),
		queue:   event.NewQueue(),
		session: NewSession(),
	}
	e.router = event.NewRouter[*engine.World](e.queue)
	e.ctx = &system.Context{
		World:  e.world,
		Queue:  e.queue,
		Ledger: e.session,
		Rand:   cfg.Rand,
		Field:  cfg.Field,
		Sizes:  cfg.Sizes,
		Logger: cfg.Logger,
	}

	system.SpawnPlayer(e.ctx)

	e.world.AddSystem(system.NewMotionSystem(e.ctx))
	e.world.AddSystem(system.NewTimerSystem(e.ctx))
	e.world.AddSystem(system.NewContactSystem(e.ctx))

	e.router.Register(system.NewAudioSystem(cfg.Audio))
	e.router.Register(e)

	e.spawner = system.NewSpawnSystem(e.ctx)
	e.launcher = system.NewLaunchSystem(e.ctx)
	e.spawner.Start()

	cfg.Logger.Printf("round %s started field=%.0fx%.0f", e.session.RoundID, cfg.Field.X, cfg.Field.Y)
	return e
}

// Update runs one tick: motion, scheduled continuations, contacts, then event dispatch
// Once the round is decided nothing is simulated
func (e *Encounter) Update(dt time.Duration) {
	if e.session.Decided() {
		return
	}
	e.frame++
	e.queue.SetFrame(e.frame)
	e.world.Update(dt)
	e.router.DispatchAll(e.world)
}

// TouchEnded launches a projectile toward the first point
func (e *Encounter) TouchEnded(points []vmath.Vec2) {
	e.launcher.Launch(points)
}

// Launch is TouchEnded with the launch result exposed
func (e *Encounter) Launch(points []vmath.Vec2) (core.Entity, bool) {
	return e.launcher.Launch(points)
}

// Outcome returns the round's outcome, OutcomeNone while playing
func (e *Encounter) Outcome() Outcome {
	return e.session.Outcome()
}

// Session exposes the round state
func (e *Encounter) Session() *Session {
	return e.session
}

// World exposes the entity arena
func (e *Encounter) World() *engine.World {
	return e.world
}

// Snapshot returns the drawable entities in creation order
func (e *Encounter) Snapshot() []Sprite {
	ids := e.world.Sprites.All()
	sprites := make([]Sprite, 0, len(ids))
	for _, id := range ids {
		sp, _ := e.world.Sprites.Get(id)
		t, ok := e.world.Transforms.Get(id)
		if !ok {
			continue
		}
		sprites = append(sprites, Sprite{
			Entity:   id,
			Kind:     sp.Kind,
			Position: t.Position,
			Size:     sp.Size,
		})
	}
	return sprites
}

// View returns the frame to draw
func (e *Encounter) View() View {
	return View{
		Field:      e.cfg.Field,
		Background: parameter.PlayingBackground,
		Sprites:    e.Snapshot(),
		Kills:      e.session.MonstersDestroyed,
		ScaleX:     1,
	}
}

// Close cancels all scheduled work and drops every entity
func (e *Encounter) Close() {
	e.spawner.Stop()
	e.world.Clear()
	e.queue.Clear()
}

// UnmarshalBinary always panics: encounters are never restored from persisted data
func (e *Encounter) UnmarshalBinary([]byte) error {
	panic("scene: Encounter does not support decoding from persisted data")
}

// EventTypes returns the outcome events the encounter logs
func (e *Encounter) EventTypes() []event.EventType {
	return []event.EventType{event.EventEncounterWon, event.EventEncounterLost}
}

// HandleEvent logs the decided outcome
func (e *Encounter) HandleEvent(_ *engine.World, ev event.GameEvent) {
	kills := e.session.MonstersDestroyed
	if p, ok := ev.Payload.(*event.OutcomePayload); ok {
		kills = p.MonstersDestroyed
	}
	e.cfg.Logger.Printf("round %s %s at frame %d with %d kills",
		e.session.RoundID, e.session.Outcome(), ev.Frame, kills)
}
