package ecs

import (
	"math/rand"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

// World owns entities, component stores, the per-tick clock and the event queue.
// It is not safe for concurrent use: one goroutine ticks it, and renderers
// read it only after the tick returns.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	deltaMS float64
	rng     *rand.Rand
}

// NewWorld creates an empty ECS world with a deterministic random source.
func NewWorld() *World {
	return NewWorldWithSeed(1)
}

// NewWorldWithSeed creates an empty world whose random source is seeded with seed.
func NewWorldWithSeed(seed int64) *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// CreateEntity allocates a new entity with no components.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddComponent stores value under id for e, replacing any previous value.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(id, true).Set(e, value)
	return nil
}

// RemoveComponent deletes the component stored under id for e.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.store(id, false).Remove(e)
}

// HasComponent reports whether e owns a component under id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(id, false).Has(e)
}

// GetComponent returns the raw component stored under id for e.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.HasComponent(e, id) {
		return nil, false
	}
	return w.store(id, false).Get(e), true
}

// Query returns a snapshot of the entities owning every listed kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	return intersect(sets)
}

// First returns the first entity owning kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	ents := w.store(kind.ID(), false).Entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetDeltaMS sets the elapsed time of the step being simulated.
func (w *World) SetDeltaMS(ms float64) {
	if w == nil {
		return
	}
	w.deltaMS = ms
}

// DeltaMS returns the elapsed time of the step being simulated, in milliseconds.
func (w *World) DeltaMS() float64 {
	if w == nil {
		return 0
	}
	return w.deltaMS
}

// DeltaSeconds returns DeltaMS in seconds.
func (w *World) DeltaSeconds() float64 {
	return w.DeltaMS() / 1000
}

// Rand returns the world's random source.
func (w *World) Rand() *rand.Rand {
	if w == nil {
		return nil
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(1))
	}
	return w.rng
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
