package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/component"
)

var (
	colorSelected = color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	colorMagnetic = color.NRGBA{R: 0x00, G: 0xd0, B: 0xff, A: 0xff}
	colorBand     = color.NRGBA{R: 0x40, G: 0x80, B: 0xff, A: 0x50}
)

// RenderSystem draws tokens and the rubber band, and reports each
// token's rendered size back into its Dimensions component so the drag
// core can resolve unmeasured sizes.
type RenderSystem struct {
	pixel *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Update measures: the rendered size of a token is its sprite size.
func (r *RenderSystem) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.DimensionsComponent, component.SpriteComponent,
		func(_ ecs.Entity, dim *component.Dimensions, sp *component.Sprite) {
			dim.RenderedWidth = sp.Width
			dim.RenderedHeight = sp.Height
		})
}

// Draw paints every token bottom-up by stacking index.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		zi, zj := 0.0, 0.0
		if tr, ok := ecs.Get(w, entities[i], component.TransformComponent); ok {
			zi = tr.Z
		}
		if tr, ok := ecs.Get(w, entities[j], component.TransformComponent); ok {
			zj = tr.Z
		}
		if zi != zj {
			return zi < zj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		sp, _ := ecs.Get(w, e, component.SpriteComponent)
		if tr == nil || sp == nil {
			continue
		}
		x, y := tr.X, tr.Y
		if gl, ok := ecs.Get(w, e, component.GlideComponent); ok {
			x, y = gl.X, gl.Y
		}

		if sc, ok := ecs.Get(w, e, component.SelectionComponent); ok && sc.State != component.SelectNone {
			highlight := colorSelected
			if sc.State == component.Magnetic {
				highlight = colorMagnetic
			}
			r.fillRect(screen, x-2, y-2, sp.Width+4, sp.Height+4, sp.Rotation, highlight)
		}
		r.fillRect(screen, x, y, sp.Width, sp.Height, sp.Rotation, sp.Color)
	}

	ecs.ForEach(w, component.RegionSelectComponent, func(_ ecs.Entity, rs *component.RegionSelect) {
		r.fillRect(screen, rs.X, rs.Y, rs.Width, rs.Height, 0, colorBand)
	})
}

func (r *RenderSystem) fillRect(screen *ebiten.Image, x, y, w, h, rot float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	if rot != 0 {
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(rot)
		op.GeoM.Translate(w/2, h/2)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(r.pixel, op)
}
