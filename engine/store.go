package engine

import (
	"github.com/lixenwraith/shuriken/core"
)

// Store is a generic container for a specific component type T
// Keeps a dense entity slice for ordered iteration; not safe for concurrent use
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes the component for an entity, preserving iteration order of the rest
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a copy of the entities with this component in insertion order
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
