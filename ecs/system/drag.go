package system

import (
	"math/rand"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tabletop/common"
	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/component"
	"github.com/milk9111/tabletop/geom"
	"github.com/milk9111/tabletop/scene"
)

// Magnetic pull-in blend factor per tick: positions move 2% toward the
// anchor target each frame, producing a visible pull instead of a snap.
const magneticBlend = 0.02

// DragSystem synchronizes multi-token selection and drag manipulation.
// When one selected token is dragged, every other selected token moves
// in lockstep; during a magnetic drag, nearby idle tokens are pulled
// into the selection and redistributed around the primary on release.
type DragSystem struct {
	table     *scene.Table
	selection *scene.Selection
	registry  *scene.Registry

	dragging bool
	moved    bool
}

func NewDragSystem(table *scene.Table, selection *scene.Selection, registry *scene.Registry) *DragSystem {
	return &DragSystem{table: table, selection: selection, registry: registry}
}

// Update drains pointer events and dispatches them. Within one gesture
// the pointer layer guarantees pick-start precedes any drag-move, and
// drag-move precedes the single drag-end.
func (d *DragSystem) Update(w *ecs.World) {
	if d == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		switch data := evt.Data.(type) {
		case PickStart:
			d.pickStart(w, data.Entity, data.Magnetic)
		case PickObject:
			d.pickObject(w, data.Entity)
		case PickRegion:
			d.pickRegion(w, data.Region)
		case DragMove:
			d.updateMove(w, data.Entity, data.DX, data.DY, data.DZ)
		case DragEnd:
			d.finishMove(w, data.Entity, data.DX, data.DY, data.DZ)
		case GestureEnd:
			d.selection.Release()
		case CongregateRequest:
			d.congregate(w, data)
		}
	}
}

// Dragging reports whether a token drag is currently in progress.
func (d *DragSystem) Dragging() bool {
	return d != nil && d.dragging
}

func (d *DragSystem) pickStart(w *ecs.World, e ecs.Entity, magnetic bool) {
	tv, ok := ecs.Get(w, e, component.TokenViewComponent)
	if !ok || tv.Disabled {
		return
	}
	if d.table.Piece(tv.PieceID) == nil {
		return
	}
	// Selection membership is pick-object's job; a press only arms the
	// gesture. Adding here would make the click toggle see the piece
	// as already selected and immediately deselect it.
	if magnetic {
		d.setState(w, e, component.Magnetic)
	} else {
		d.setState(w, e, component.Selected)
	}
	d.prepareMove(w, e)
}

func (d *DragSystem) pickObject(w *ecs.World, e ecs.Entity) {
	if d.dragging {
		return
	}
	tv, ok := ecs.Get(w, e, component.TokenViewComponent)
	if !ok || tv.Disabled {
		return
	}
	holder := d.selection.Holder()
	if holder == e {
		return
	}
	p := d.table.Piece(tv.PieceID)
	if p == nil {
		return
	}
	if !holder.Valid() {
		// First claimant of the gesture toggles.
		if d.selection.Contains(p) {
			d.selection.Remove(p)
			d.setState(w, e, component.SelectNone)
		} else {
			d.selection.Add(p)
			d.setState(w, e, component.Selected)
		}
		d.selection.Claim(e)
		return
	}
	// Someone else owns the gesture: extend.
	d.selection.Add(p)
	d.setState(w, e, component.Selected)
}

func (d *DragSystem) pickRegion(w *ecs.World, region geom.Rect) {
	if d.dragging {
		return
	}
	regionCorners := region.Corners()
	regionBB := region.BB()
	ecs.ForEach3(w, component.TokenViewComponent, component.TransformComponent, component.DimensionsComponent,
		func(e ecs.Entity, tv *component.TokenView, tr *component.Transform, dim *component.Dimensions) {
			if tv.Disabled {
				return
			}
			wd, ht := dim.Measured()
			raw := geom.Rect{X: tr.X, Y: tr.Y, Width: wd, Height: ht}
			if !raw.BB().Intersects(regionBB) {
				return
			}
			corners := transformedCorners(w, e, raw)
			if !geom.Overlaps(corners[:], regionCorners[:]) {
				return
			}
			if p := d.table.Piece(tv.PieceID); p != nil {
				d.selection.Add(p)
				d.setState(w, e, component.Selected)
			}
		})
}

// prepareMove readies every other selected token for the group drag:
// disabled ones drop out, the rest lose interactivity and animated
// transitions so the drag renders without interpolation lag.
func (d *DragSystem) prepareMove(w *ecs.World, e ecs.Entity) {
	if d.state(w, e) == component.SelectNone {
		return
	}
	for _, m := range d.selectedMovables(w) {
		if m == e {
			continue
		}
		tv, ok := ecs.Get(w, m, component.TokenViewComponent)
		if !ok || tv.Disabled {
			d.setState(w, m, component.SelectNone)
			continue
		}
		d.setState(w, m, component.Selected)
		d.setVisual(w, m, false, false)
	}
}

// updateMove propagates a per-tick translation to the selected tokens.
// A magnetic primary additionally attracts nearby idle tokens on its
// layer and pulls attached ones toward its center.
func (d *DragSystem) updateMove(w *ecs.World, e ecs.Entity, dx, dy, dz float64) {
	st := d.state(w, e)
	if st == component.SelectNone {
		// Abandoned gesture: the governing selection went away mid-drag.
		if d.moved {
			d.selection.Clear()
		}
		return
	}
	d.dragging = true
	d.moved = true

	etr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	edim, ok := ecs.Get(w, e, component.DimensionsComponent)
	if !ok {
		return
	}

	if st == component.Magnetic {
		edim.Resolve()
		etv, _ := ecs.Get(w, e, component.TokenViewComponent)
		ecs.ForEach2(w, component.TokenViewComponent, component.TransformComponent,
			func(m ecs.Entity, mtv *component.TokenView, mtr *component.Transform) {
				if m == e || mtv.Disabled || etv == nil || mtv.Layer != etv.Layer {
					return
				}
				if d.state(w, m) != component.SelectNone {
					return
				}
				mdim, ok := ecs.Get(w, m, component.DimensionsComponent)
				if !ok || !proximate(etr, edim, mtr, mdim) {
					return
				}
				if p := d.table.Piece(mtv.PieceID); p != nil {
					d.selection.Add(p)
				}
				d.setState(w, m, component.Magnetic)
				d.setVisual(w, m, false, false)
			})
	}

	ew, eh := edim.Measured()
	for _, m := range d.selectedMovables(w) {
		if m == e {
			continue
		}
		mtr, ok := ecs.Get(w, m, component.TransformComponent)
		if !ok {
			continue
		}
		mtr.X += dx
		mtr.Y += dy
		mtr.Z += dz
		if d.state(w, m) == component.Magnetic {
			var mw, mh float64
			if mdim, ok := ecs.Get(w, m, component.DimensionsComponent); ok {
				mw, mh = mdim.Measured()
			}
			// Exponential pull toward the position that centers this
			// token on the primary.
			tx := etr.X + (ew-mw)/2
			ty := etr.Y + (eh-mh)/2
			tz := etr.Z
			mtr.X = mtr.X*(1-magneticBlend) + tx*magneticBlend
			mtr.Y = mtr.Y*(1-magneticBlend) + ty*magneticBlend
			mtr.Z = mtr.Z*(1-magneticBlend) + tz*magneticBlend
		}
		if mtr.Z < 0 {
			mtr.Z = 0
		}
	}
}

// finishMove applies the final translation, redistributes magnetically
// attached tokens around the primary, and decays the drag state.
func (d *DragSystem) finishMove(w *ecs.World, e ecs.Entity, dx, dy, dz float64) {
	defer d.endGesture()

	st := d.state(w, e)
	if st == component.SelectNone {
		d.selection.Clear()
		return
	}

	sel := d.selectedMovables(w)
	for _, m := range sel {
		if m == e {
			continue
		}
		if mtr, ok := ecs.Get(w, m, component.TransformComponent); ok {
			mtr.X += dx
			mtr.Y += dy
			mtr.Z += dz
		}
	}

	d.redistribute(w, e, sel)

	if st == component.Magnetic && d.selection.Len() <= 1 {
		// Nothing (or one stray piece) ended up selected: drop the
		// whole gesture, but hand every touched token back in a
		// pickable state rather than stranding it non-interactive.
		for _, m := range sel {
			d.decay(w, m, component.SelectNone)
		}
		d.decay(w, e, component.SelectNone)
		d.selection.Clear()
		return
	}
	for _, m := range sel {
		d.decay(w, m, component.Selected)
	}
	// The primary's view may not be in the resolved set (its piece was
	// never clicked into the selection); settle it by membership so no
	// magnetic state or resolved size outlives the gesture.
	if tv, ok := ecs.Get(w, e, component.TokenViewComponent); ok {
		settled := component.SelectNone
		if p := d.table.Piece(tv.PieceID); p != nil && d.selection.Contains(p) {
			settled = component.Selected
		}
		d.decay(w, e, settled)
	}
}

// decay settles a token at the end of a drag cycle: final state,
// visual flags back on, size back to the unmeasured sentinel.
func (d *DragSystem) decay(w *ecs.World, e ecs.Entity, st component.SelectState) {
	d.setState(w, e, st)
	d.setVisual(w, e, true, true)
	if dim, ok := ecs.Get(w, e, component.DimensionsComponent); ok {
		dim.Reset()
	}
}

// redistribute arranges the magnetically attached tokens evenly on a
// circle around the primary so they don't stack on release.
func (d *DragSystem) redistribute(w *ecs.World, e ecs.Entity, sel []ecs.Entity) {
	etr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	edim, ok := ecs.Get(w, e, component.DimensionsComponent)
	if !ok {
		return
	}

	type attached struct {
		e     ecs.Entity
		piece *scene.Piece
	}
	var mags []attached
	for _, m := range sel {
		if m == e || d.state(w, m) != component.Magnetic {
			continue
		}
		var p *scene.Piece
		if tv, ok := ecs.Get(w, m, component.TokenViewComponent); ok {
			p = d.table.Piece(tv.PieceID)
		}
		mags = append(mags, attached{e: m, piece: p})
	}
	n := len(mags)
	if n == 0 {
		// Nothing attached; also keeps the angular step division sane.
		return
	}

	sort.SliceStable(mags, func(i, j int) bool {
		a, b := mags[i].piece, mags[j].piece
		if a == nil || b == nil || !a.HasSort || !b.HasSort {
			return false
		}
		return a.Sort < b.Sort
	})

	ew, eh := edim.Measured()
	center := cp.Vector{X: etr.X + ew/2, Y: etr.Y + eh/2}
	radius := common.Clamp((ew+eh)/2, 50, 75)
	start := rand.Float64() * 360
	step := 360.0 / float64(n)
	for i, mg := range mags {
		mtr, ok := ecs.Get(w, mg.e, component.TransformComponent)
		if !ok {
			continue
		}
		var mw, mh float64
		if mdim, ok := ecs.Get(w, mg.e, component.DimensionsComponent); ok {
			mw, mh = mdim.Measured()
		}
		pt := geom.CirclePoint(center, radius, start+step*float64(i))
		mtr.X = pt.X - mw/2
		mtr.Y = pt.Y - mh/2
	}
}

func (d *DragSystem) congregate(w *ecs.World, req CongregateRequest) {
	var pieces []*scene.Piece
	if len(req.PieceIDs) == 0 {
		pieces = d.selection.Pieces()
	} else {
		for _, id := range req.PieceIDs {
			if p := d.table.Piece(id); p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	Congregate(w, d.registry, cp.Vector{X: req.X, Y: req.Y}, pieces)
}

func (d *DragSystem) endGesture() {
	d.dragging = false
	d.moved = false
	d.selection.Release()
}

// selectedMovables resolves the selected pieces to their live view
// entities, deduplicated, in selection order.
func (d *DragSystem) selectedMovables(w *ecs.World) []ecs.Entity {
	var out []ecs.Entity
	seen := make(map[ecs.Entity]struct{})
	for _, p := range d.selection.Pieces() {
		for _, v := range d.registry.Views(p.ID) {
			if !ecs.IsAlive(w, v) {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func (d *DragSystem) state(w *ecs.World, e ecs.Entity) component.SelectState {
	if sc, ok := ecs.Get(w, e, component.SelectionComponent); ok {
		return sc.State
	}
	return component.SelectNone
}

func (d *DragSystem) setState(w *ecs.World, e ecs.Entity, st component.SelectState) {
	if sc, ok := ecs.Get(w, e, component.SelectionComponent); ok {
		sc.State = st
		return
	}
	_ = ecs.Add(w, e, component.SelectionComponent, &component.Selection{State: st})
}

func (d *DragSystem) setVisual(w *ecs.World, e ecs.Entity, interactive, animated bool) {
	if vis, ok := ecs.Get(w, e, component.VisualComponent); ok {
		vis.Interactive = interactive
		vis.Animated = animated
	}
}
