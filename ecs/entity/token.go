package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/component"
	"github.com/milk9111/tabletop/prefabs"
	"github.com/milk9111/tabletop/scene"
)

// BuildBoard populates the table, registry, and world from a board
// spec. Existing entities are not cleared; callers reloading a board
// tear the old one down first.
func BuildBoard(w *ecs.World, table *scene.Table, reg *scene.Registry, spec *prefabs.BoardSpec) error {
	if w == nil || table == nil || reg == nil || spec == nil {
		return fmt.Errorf("entity: build board: nil argument")
	}
	for _, ps := range spec.Pieces {
		p := &scene.Piece{ID: ps.ID, Name: ps.Name}
		if ps.Sort != nil {
			p.Sort = *ps.Sort
			p.HasSort = true
		}
		table.Put(p)
		for i, ts := range ps.Tokens {
			if _, err := BuildToken(w, reg, ps.ID, ps.Layer, ts); err != nil {
				return fmt.Errorf("entity: piece %s token %d: %w", ps.ID, i, err)
			}
		}
	}
	return nil
}

// BuildToken creates one movable token view for a piece and registers
// it. Width/height start at the unmeasured sentinel; the spec size is
// the sprite (rendered) size.
func BuildToken(w *ecs.World, reg *scene.Registry, pieceID, layer string, ts prefabs.TokenSpec) (ecs.Entity, error) {
	col, err := prefabs.ParseColor(ts.Color)
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: ts.X, Y: ts.Y, Z: ts.Z}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.DimensionsComponent, &component.Dimensions{
		Width:          component.Unmeasured,
		Height:         component.Unmeasured,
		RenderedWidth:  ts.Width,
		RenderedHeight: ts.Height,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TokenViewComponent, &component.TokenView{
		PieceID:  pieceID,
		Layer:    layer,
		Disabled: ts.Disabled,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SelectionComponent, &component.Selection{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.VisualComponent, &component.Visual{Interactive: true, Animated: true}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.GlideComponent, &component.Glide{X: ts.X, Y: ts.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BoundsCacheComponent, &component.BoundsCache{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Width:    ts.Width,
		Height:   ts.Height,
		Color:    col,
		Rotation: ts.Rotation * math.Pi / 180,
	}); err != nil {
		return 0, err
	}

	reg.Register(pieceID, e)
	return e, nil
}

// DestroyToken unregisters and destroys a token view.
func DestroyToken(w *ecs.World, reg *scene.Registry, e ecs.Entity) {
	if tv, ok := ecs.Get(w, e, component.TokenViewComponent); ok {
		reg.Unregister(tv.PieceID, e)
	}
	ecs.DestroyEntity(w, e)
}

// ClearBoard tears down every token and empties the table.
func ClearBoard(w *ecs.World, table *scene.Table, reg *scene.Registry) {
	var tokens []ecs.Entity
	ecs.ForEach(w, component.TokenViewComponent, func(e ecs.Entity, _ *component.TokenView) {
		tokens = append(tokens, e)
	})
	for _, e := range tokens {
		DestroyToken(w, reg, e)
	}
	table.Clear()
}
