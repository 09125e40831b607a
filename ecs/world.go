package ecs

import "github.com/milk9111/tabletop/ecs/component"

// World owns entities, component storage, and the event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns entities carrying every listed component kind.
func (w *World) Query(kinds ...component.Ref) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	base := w.store(kinds[0].ID(), false)
	if base == nil {
		return nil
	}
	out := make([]Entity, 0, base.Len())
outer:
	for _, id := range base.Entities() {
		for _, k := range kinds[1:] {
			s := w.store(k.ID(), false)
			if s == nil || !s.Has(id) {
				continue outer
			}
		}
		if e, ok := w.entities.handle(entityID(id)); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any one entity carrying the component kind.
func (w *World) First(kind component.Ref) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return 0, false
	}
	for _, id := range s.Entities() {
		if e, ok := w.entities.handle(entityID(id)); ok {
			return e, true
		}
	}
	return 0, false
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
