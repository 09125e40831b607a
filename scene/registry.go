package scene

import "github.com/milk9111/tabletop/ecs"

// Registry maps a piece id to the movable entities representing it on
// screen. A piece may have multiple views (duplicated tokens); an id is
// present in the registry exactly while its view set is non-empty.
//
// The registry is an owned service instance shared by every token on
// one table. All access happens on the game loop; mutation is not
// guarded for concurrent use.
type Registry struct {
	views map[string][]ecs.Entity
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[string][]ecs.Entity)}
}

// Register adds a view entity for the piece id.
func (r *Registry) Register(id string, e ecs.Entity) {
	if r == nil || id == "" || !e.Valid() {
		return
	}
	for _, v := range r.views[id] {
		if v == e {
			return
		}
	}
	r.views[id] = append(r.views[id], e)
}

// Unregister removes a view entity. The piece's entry disappears once
// its view set becomes empty.
func (r *Registry) Unregister(id string, e ecs.Entity) {
	if r == nil {
		return
	}
	vs, ok := r.views[id]
	if !ok {
		return
	}
	for i, v := range vs {
		if v == e {
			vs = append(vs[:i], vs[i+1:]...)
			break
		}
	}
	if len(vs) == 0 {
		delete(r.views, id)
		return
	}
	r.views[id] = vs
}

// Views returns the view entities for a piece id. The result is a
// snapshot; later Register/Unregister calls do not touch it.
func (r *Registry) Views(id string) []ecs.Entity {
	if r == nil {
		return nil
	}
	vs, ok := r.views[id]
	if !ok {
		return nil
	}
	return append([]ecs.Entity(nil), vs...)
}

// Contains reports whether the piece id has any registered views.
func (r *Registry) Contains(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.views[id]
	return ok
}

// Len returns the number of pieces with registered views.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.views)
}
