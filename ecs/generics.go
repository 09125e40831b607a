package ecs

import "github.com/milk9111/tabletop/ecs/component"

// Add attaches a component to a live entity.
func Add[T any](w *World, e Entity, h component.ComponentHandle[T], v *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !h.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(h.Kind().ID(), true).Set(int(e.id()), v)
	return nil
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(h.Kind().ID(), false).Remove(int(e.id()))
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	s := w.store(h.Kind().ID(), false)
	return s.Has(int(e.id()))
}

// Get returns the entity's component pointer for in-place mutation.
func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(h.Kind().ID(), false)
	v, ok := s.Get(int(e.id())).(*T)
	if !ok {
		return nil, false
	}
	return v, true
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(h.Kind().ID(), false)
	if s == nil {
		return
	}
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.handle(entityID(id))
		if !ok {
			continue
		}
		if v, ok := s.Get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	ForEach(w, ha, func(e Entity, a *A) {
		if b, ok := Get(w, e, hb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits entities carrying all three components.
func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	ForEach(w, ha, func(e Entity, a *A) {
		b, ok := Get(w, e, hb)
		if !ok {
			return
		}
		c, ok := Get(w, e, hc)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}
