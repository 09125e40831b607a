package system

import "github.com/milk9111/tabletop/ecs/component"

// Minimum magnetic attraction distance in table units.
const minAttractDistance = 25.0

// proximate reports whether b's center lies within the magnetic
// attraction threshold of a's center. The threshold scales with the
// combined half-extents of both tokens. Z participates in the distance
// like a spatial coordinate even though it is a stacking index; tests
// pin that behavior.
func proximate(at *component.Transform, ad *component.Dimensions, bt *component.Transform, bd *component.Dimensions) bool {
	if at == nil || ad == nil || bt == nil || bd == nil {
		return false
	}
	aw, ah := ad.Measured()
	bw, bh := bd.Measured()

	threshold := ((aw+bw)/4 + (ah+bh)/4) * 0.95
	if threshold < minAttractDistance {
		threshold = minAttractDistance
	}

	dx := (at.X + aw/2) - (bt.X + bw/2)
	dy := (at.Y + ah/2) - (bt.Y + bh/2)
	dz := at.Z - bt.Z
	return dx*dx+dy*dy+dz*dz < threshold*threshold
}
