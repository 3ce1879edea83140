package entity

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"

	"github.com/hackolite/cv-minecraft-sub000/sim"
)

// Registry tracks the entities of a world. Iteration follows insertion
// order, which keeps entity-vs-entity snapshots and tick scheduling
// deterministic across runs.
type Registry struct {
	mu       deadlock.RWMutex
	entities *orderedmap.OrderedMap[uuid.UUID, *Entity]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: orderedmap.NewOrderedMap[uuid.UUID, *Entity]()}
}

// Add registers an entity.
func (r *Registry) Add(e *Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entities.Set(e.ID(), e)
}

// Remove unregisters the entity with the id passed.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entities.Delete(id)
}

// Get returns the entity with the id passed.
func (r *Registry) Get(id uuid.UUID) (*Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entities.Get(id)
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entities.Len()
}

// All returns the entities in insertion order.
func (r *Registry) All() []*Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entity, 0, r.entities.Len())
	for el := r.entities.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Obstacles returns a frozen snapshot of every entity's collision volume
// except the one with the excluded id. Taken once before a tick round, the
// snapshot guarantees order-independent entity-vs-entity results.
func (r *Registry) Obstacles(exclude uuid.UUID) []sim.Obstacle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sim.Obstacle, 0, r.entities.Len())
	for el := r.entities.Front(); el != nil; el = el.Next() {
		if el.Key == exclude {
			continue
		}
		out = append(out, el.Value.Obstacle())
	}
	return out
}
