package system

import (
	"math"

	"github.com/milk9111/tabletop/common"
	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/component"
)

// GlideSystem eases the rendered position toward the logical transform
// while a token's animated-transition flag is on, and snaps it when the
// flag is off (group drags render without interpolation lag).
type GlideSystem struct {
	Rate float64
}

func NewGlideSystem() *GlideSystem {
	return &GlideSystem{Rate: 0.25}
}

func (g *GlideSystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.TransformComponent, component.VisualComponent, component.GlideComponent,
		func(_ ecs.Entity, tr *component.Transform, vis *component.Visual, gl *component.Glide) {
			if !vis.Animated {
				gl.X, gl.Y = tr.X, tr.Y
				gl.Active = false
				return
			}
			dx := tr.X - gl.X
			dy := tr.Y - gl.Y
			if math.Abs(dx) < 0.5 && math.Abs(dy) < 0.5 {
				gl.X, gl.Y = tr.X, tr.Y
				gl.Active = false
				return
			}
			gl.Active = true
			gl.X = common.Lerp(gl.X, tr.X, g.Rate)
			gl.Y = common.Lerp(gl.Y, tr.Y, g.Rate)
		})
}

// StopGlide halts an in-flight transition, freezing the rendered
// position where it currently is.
func StopGlide(w *ecs.World, e ecs.Entity) {
	if gl, ok := ecs.Get(w, e, component.GlideComponent); ok {
		gl.Active = false
	}
}
