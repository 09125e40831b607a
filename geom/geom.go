package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the rect's center point.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Corners returns the four corners in clockwise order starting top-left.
func (r Rect) Corners() [4]cp.Vector {
	return [4]cp.Vector{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// BB returns the rect as a chipmunk bounding box for broad-phase checks.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// RotatedCorners returns the rect's corners rotated by angle radians
// about the rect center.
func RotatedCorners(r Rect, angle float64) [4]cp.Vector {
	if angle == 0 {
		return r.Corners()
	}
	c := r.Center()
	rot := cp.ForAngle(angle)
	corners := r.Corners()
	for i, p := range corners {
		corners[i] = c.Add(p.Sub(c).Rotate(rot))
	}
	return corners
}

// Overlaps reports whether two convex polygons overlap, touching
// included. Standard separating axis test: every edge of both polygons
// yields a candidate axis; disjoint projection intervals on any axis
// prove separation.
func Overlaps(a, b []cp.Vector) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return !separated(a, b) && !separated(b, a)
}

func separated(edges, other []cp.Vector) bool {
	n := len(edges)
	for i := 0; i < n; i++ {
		edge := edges[(i+1)%n].Sub(edges[i])
		axis := edge.Perp()
		minA, maxA := project(edges, axis)
		minB, maxB := project(other, axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

func project(pts []cp.Vector, axis cp.Vector) (min, max float64) {
	min = pts[0].Dot(axis)
	max = min
	for _, p := range pts[1:] {
		d := p.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// CirclePoint returns the point on a circle at the given angle in
// degrees. The x offset uses sine and the y offset uses cosine; callers
// depend on that convention for placement layouts.
func CirclePoint(center cp.Vector, radius, angleDeg float64) cp.Vector {
	rad := angleDeg * math.Pi / 180
	return cp.Vector{
		X: center.X + math.Sin(rad)*radius,
		Y: center.Y + math.Cos(rad)*radius,
	}
}
