package engine

import (
	"time"

	"github.com/lixenwraith/shuriken/component"
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/vmath"
)

// World is the entity arena of one encounter
// Destroying an entity deletes its components and cancels its scheduled continuations
type World struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Scheduler *Scheduler

	Transforms  *Store[component.TransformComponent]
	Sprites     *Store[component.SpriteComponent]
	Bodies      *Store[component.BodyComponent]
	Players     *Store[component.PlayerComponent]
	Monsters    *Store[component.MonsterComponent]
	Projectiles *Store[component.ProjectileComponent]
	Motions     *Store[*Motion]

	removers []func(core.Entity)
	clearers []func()
	systems  []System
}

// NewWorld creates an empty world with its own scheduler
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Scheduler:    NewScheduler(),
		Transforms:   NewStore[component.TransformComponent](),
		Sprites:      NewStore[component.SpriteComponent](),
		Bodies:       NewStore[component.BodyComponent](),
		Players:      NewStore[component.PlayerComponent](),
		Monsters:     NewStore[component.MonsterComponent](),
		Projectiles:  NewStore[component.ProjectileComponent](),
		Motions:      NewStore[*Motion](),
	}
	register(w, w.Transforms)
	register(w, w.Sprites)
	register(w, w.Bodies)
	register(w, w.Players)
	register(w, w.Monsters)
	register(w, w.Projectiles)
	register(w, w.Motions)
	return w
}

func register[T any](w *World, s *Store[T]) {
	w.removers = append(w.removers, s.Remove)
	w.clearers = append(w.clearers, s.Clear)
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether the entity exists in the arena
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes the entity, its components and its pending continuations
// Returns false if the entity was already gone
func (w *World) DestroyEntity(e core.Entity) bool {
	if _, ok := w.alive[e]; !ok {
		return false
	}
	delete(w.alive, e)
	for _, remove := range w.removers {
		remove(e)
	}
	w.Scheduler.Cancel(e)
	return true
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// Clear removes all entities, components and scheduled work
func (w *World) Clear() {
	for _, clearStore := range w.clearers {
		clearStore()
	}
	w.alive = make(map[core.Entity]struct{})
	w.Scheduler.Clear()
}

// MoveTo starts linear motion of e from its current position to target over d
// then runs on arrival unless e is destroyed first
func (w *World) MoveTo(e core.Entity, target vmath.Vec2, d time.Duration, then func()) {
	t, _ := w.Transforms.Get(e)
	w.Motions.Set(e, NewMotion(t.Position, target, d))
	if then != nil {
		w.Scheduler.After(d, e, then)
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs all systems in priority order
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(dt)
	}
}
