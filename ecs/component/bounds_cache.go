package component

import "github.com/jakecoffman/cp"

// BoundsCache memoizes a token's transformed corner points so that a
// region pick doesn't recompute a transform on every pointer tick. The
// eight scalar fields mirror the raw bounding rectangle; the corners
// are recomputed only when one of them changes.
type BoundsCache struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Top    float64
	Left   float64
	Bottom float64
	Right  float64

	Corners [4]cp.Vector
	Valid   bool
}

// Matches reports whether the cached scalars equal the given raw
// rectangle, field by field.
func (b *BoundsCache) Matches(x, y, w, h float64) bool {
	if b == nil || !b.Valid {
		return false
	}
	return b.X == x && b.Y == y && b.Width == w && b.Height == h &&
		b.Top == y && b.Left == x && b.Bottom == y+h && b.Right == x+w
}

// Store records the raw rectangle and its transformed corners.
func (b *BoundsCache) Store(x, y, w, h float64, corners [4]cp.Vector) {
	if b == nil {
		return
	}
	b.X, b.Y, b.Width, b.Height = x, y, w, h
	b.Top, b.Left = y, x
	b.Bottom, b.Right = y+h, x+w
	b.Corners = corners
	b.Valid = true
}

var BoundsCacheComponent = NewComponent[BoundsCache]()
