package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/component"
	"github.com/milk9111/tabletop/geom"
)

// transformedCorners returns the token's global-space corner points,
// reusing the cached set while the raw bounding rectangle is unchanged.
// Tokens without a BoundsCache component pay the transform every call.
func transformedCorners(w *ecs.World, e ecs.Entity, raw geom.Rect) [4]cp.Vector {
	var rot float64
	if sp, ok := ecs.Get(w, e, component.SpriteComponent); ok {
		rot = sp.Rotation
	}
	cache, cached := ecs.Get(w, e, component.BoundsCacheComponent)
	if cached && cache.Matches(raw.X, raw.Y, raw.Width, raw.Height) {
		return cache.Corners
	}
	corners := geom.RotatedCorners(raw, rot)
	if cached {
		cache.Store(raw.X, raw.Y, raw.Width, raw.Height, corners)
	}
	return corners
}
