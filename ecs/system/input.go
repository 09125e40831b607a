package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/component"
	"github.com/milk9111/tabletop/geom"
)

// Pointer movement below this many pixels stays a click.
const dragThreshold = 4.0

// InputSystem turns ebiten pointer state into pick/drag events for the
// drag system. Pressing on a token starts a (possibly magnetic) drag
// gesture; pressing on empty canvas starts a rubber-band region select.
type InputSystem struct {
	pressed   bool
	pressX    float64
	pressY    float64
	lastX     float64
	lastY     float64
	target    ecs.Entity
	tokenDrag bool
	band      ecs.Entity
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	cx, cy := float64(mx), float64(my)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		i.press(w, cx, cy)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && i.pressed:
		i.move(w, cx, cy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && i.pressed:
		i.release(w, cx, cy)
	}
}

func (i *InputSystem) press(w *ecs.World, cx, cy float64) {
	i.pressed = true
	i.pressX, i.pressY = cx, cy
	i.lastX, i.lastY = cx, cy
	i.tokenDrag = false
	i.target = i.hitTest(w, cx, cy)

	if i.target.Valid() {
		magnetic := ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
		w.Events().Push(ecs.Event{Type: EventPickStart, Data: PickStart{Entity: i.target, Magnetic: magnetic}})
		return
	}

	i.band = ecs.CreateEntity(w)
	_ = ecs.Add(w, i.band, component.RegionSelectComponent, &component.RegionSelect{
		StartX: cx, StartY: cy, X: cx, Y: cy,
	})
}

func (i *InputSystem) move(w *ecs.World, cx, cy float64) {
	if i.target.Valid() {
		if !i.tokenDrag {
			if math.Hypot(cx-i.pressX, cy-i.pressY) < dragThreshold {
				return
			}
			i.tokenDrag = true
		}
		// The pointer layer owns the primary's position; the drag
		// system translates the rest of the selection.
		i.translateTarget(w, cx-i.lastX, cy-i.lastY)
		w.Events().Push(ecs.Event{Type: EventDragMove, Data: DragMove{
			Entity: i.target, DX: cx - i.lastX, DY: cy - i.lastY,
		}})
		i.lastX, i.lastY = cx, cy
		return
	}
	if rs, ok := ecs.Get(w, i.band, component.RegionSelectComponent); ok {
		rs.X = math.Min(rs.StartX, cx)
		rs.Y = math.Min(rs.StartY, cy)
		rs.Width = math.Abs(cx - rs.StartX)
		rs.Height = math.Abs(cy - rs.StartY)
	}
}

func (i *InputSystem) release(w *ecs.World, cx, cy float64) {
	defer func() {
		i.pressed = false
		i.target = 0
		i.tokenDrag = false
		i.band = 0
	}()

	if i.target.Valid() {
		if i.tokenDrag {
			i.translateTarget(w, cx-i.lastX, cy-i.lastY)
			w.Events().Push(ecs.Event{Type: EventDragEnd, Data: DragEnd{
				Entity: i.target, DX: cx - i.lastX, DY: cy - i.lastY,
			}})
			return
		}
		w.Events().Push(ecs.Event{Type: EventPickObject, Data: PickObject{Entity: i.target}})
		w.Events().Push(ecs.Event{Type: EventGestureEnd, Data: GestureEnd{}})
		return
	}

	if rs, ok := ecs.Get(w, i.band, component.RegionSelectComponent); ok {
		region := geom.Rect{X: rs.X, Y: rs.Y, Width: rs.Width, Height: rs.Height}
		ecs.DestroyEntity(w, i.band)
		w.Events().Push(ecs.Event{Type: EventPickRegion, Data: PickRegion{Region: region}})
		w.Events().Push(ecs.Event{Type: EventGestureEnd, Data: GestureEnd{}})
	}
}

func (i *InputSystem) translateTarget(w *ecs.World, dx, dy float64) {
	tr, ok := ecs.Get(w, i.target, component.TransformComponent)
	if !ok {
		return
	}
	tr.X += dx
	tr.Y += dy
	if gl, ok := ecs.Get(w, i.target, component.GlideComponent); ok {
		gl.X, gl.Y = tr.X, tr.Y
	}
}

// hitTest returns the topmost interactive token under the cursor.
func (i *InputSystem) hitTest(w *ecs.World, cx, cy float64) ecs.Entity {
	var best ecs.Entity
	bestZ := math.Inf(-1)
	ecs.ForEach3(w, component.TokenViewComponent, component.TransformComponent, component.DimensionsComponent,
		func(e ecs.Entity, tv *component.TokenView, tr *component.Transform, dim *component.Dimensions) {
			if tv.Disabled {
				return
			}
			if vis, ok := ecs.Get(w, e, component.VisualComponent); ok && !vis.Interactive {
				return
			}
			wd, ht := dim.Measured()
			if cx < tr.X || cx > tr.X+wd || cy < tr.Y || cy > tr.Y+ht {
				return
			}
			if tr.Z > bestZ || !best.Valid() {
				best = e
				bestZ = tr.Z
			}
		})
	return best
}
