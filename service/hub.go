package service

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Sentinel errors
var (
	ErrDuplicateService   = errors.New("service already registered")
	ErrUnknownDependency  = errors.New("dependency on unregistered service")
	ErrCircularDependency = errors.New("circular dependency detected in services")
	ErrNotFound           = errors.New("service not found")
)

// Hub is the runtime container for service instances
// Manages lifecycle in dependency order
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	args     map[string][]any
	sorted   []string // Topological order, computed on InitAll
	started  []string // Services that completed Start(), for rollback
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
		args:     make(map[string][]any),
	}
}

// Register adds a service instance with the args its Init will receive
// Clears cached sort order to force recomputation
func (h *Hub) Register(svc Service, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateService, name)
	}

	h.services[name] = svc
	h.args[name] = args
	h.sorted = nil
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// Lookup retrieves a service and casts it to T
func Lookup[T any](h *Hub, name string) (T, error) {
	var zero T
	svc, ok := h.Get(name)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, fmt.Errorf("service %s: type mismatch, got %T", name, svc)
	}
	return typed, nil
}

// InitAll resolves dependencies and calls Init on all services
// On failure, calls Stop on already-initialized services in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	var initialized []string
	for _, name := range h.sorted {
		if err := h.services[name].Init(h.args[name]...); err != nil {
			for i := len(initialized) - 1; i >= 0; i-- {
				h.services[initialized[i]].Stop()
			}
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
		initialized = append(initialized, name)
	}
	return nil
}

// StartAll calls Start on all services in topological order
// On failure, calls Stop on already-started services in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil
	for _, name := range h.sorted {
		if err := h.services[name].Start(); err != nil {
			for i := len(h.started) - 1; i >= 0; i-- {
				h.services[h.started[i]].Stop()
			}
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll calls Stop on all started services in reverse topological order
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.started) - 1; i >= 0; i-- {
		if svc, ok := h.services[h.started[i]]; ok {
			svc.Stop()
		}
	}
	h.started = nil
}

// topologicalSort computes initialization order using Kahn's algorithm
// Ties are broken by name so the order is stable across runs
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int)
	dependents := make(map[string][]string) // dep -> services that depend on it

	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
		inDegree[name] = 0
	}
	slices.Sort(names)

	for _, name := range names {
		for _, dep := range h.services[name].Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownDependency, name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, name := range names {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	var result []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, ErrCircularDependency
	}
	return result, nil
}

// Order returns the resolved initialization order, nil before InitAll
func (h *Hub) Order() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.sorted)
}
