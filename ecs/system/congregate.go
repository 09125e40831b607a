package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tabletop/common"
	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/component"
	"github.com/milk9111/tabletop/geom"
	"github.com/milk9111/tabletop/scene"
)

// Congregate moves every view of the given pieces onto a circle around
// the target point. Pieces are placed in ordering-key order; a piece
// with multiple views reuses the same angular slot for all of them, so
// duplicated tokens land together. Runs independently of any drag.
func Congregate(w *ecs.World, reg *scene.Registry, target cp.Vector, pieces []*scene.Piece) {
	sorted := make([]*scene.Piece, 0, len(pieces))
	for _, p := range pieces {
		if p != nil {
			sorted = append(sorted, p)
		}
	}
	scene.SortByKey(sorted)

	n := len(sorted)
	if n == 0 {
		return
	}
	radius := common.Clamp(float64(n)*9, 5, 75)
	start := rand.Float64() * 360
	step := 360.0 / float64(n)

	for i, p := range sorted {
		pt := geom.CirclePoint(target, radius, start+step*float64(i))
		for _, e := range reg.Views(p.ID) {
			tr, ok := ecs.Get(w, e, component.TransformComponent)
			if !ok {
				continue
			}
			if vis, ok := ecs.Get(w, e, component.VisualComponent); ok {
				vis.Animated = true
			}
			StopGlide(w, e)
			var mw, mh float64
			if dim, ok := ecs.Get(w, e, component.DimensionsComponent); ok {
				mw, mh = dim.Measured()
			}
			tr.X = pt.X - mw/2
			tr.Y = pt.Y - mh/2
		}
	}
}
