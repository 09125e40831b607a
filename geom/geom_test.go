package geom

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    Rect
		b    Rect
		want bool
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 20, 20}, Rect{5, 5, 2, 2}, true},
		{"touching_edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, true},
		{"touching_corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, true},
		{"separated_vertically", Rect{0, 0, 10, 10}, Rect{0, 11, 10, 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ac := c.a.Corners()
			bc := c.b.Corners()
			if got := Overlaps(ac[:], bc[:]); got != c.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
			// symmetric
			if got := Overlaps(bc[:], ac[:]); got != c.want {
				t.Fatalf("Overlaps reversed = %v, want %v", got, c.want)
			}
		})
	}
}

func rotateAbout(pts [4]cp.Vector, pivot cp.Vector, angle float64) []cp.Vector {
	rot := cp.ForAngle(angle)
	out := make([]cp.Vector, len(pts))
	for i, p := range pts {
		out[i] = pivot.Add(p.Sub(pivot).Rotate(rot))
	}
	return out
}

func TestOverlapsRotationInvariant(t *testing.T) {
	pairs := []struct {
		name string
		a    Rect
		b    Rect
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{30, 5, 8, 8}},
		{"overlapping", Rect{0, 0, 10, 10}, Rect{6, 6, 10, 10}},
		{"thin_sliver", Rect{0, 0, 100, 2}, Rect{40, 1, 3, 3}},
	}
	angles := []float64{0.3, math.Pi / 4, 1.9, -2.7}
	pivot := cp.Vector{X: 13, Y: -4}

	for _, pr := range pairs {
		ac := pr.a.Corners()
		bc := pr.b.Corners()
		base := Overlaps(ac[:], bc[:])
		for _, ang := range angles {
			ra := rotateAbout(ac, pivot, ang)
			rb := rotateAbout(bc, pivot, ang)
			if got := Overlaps(ra, rb); got != base {
				t.Fatalf("%s: rotation by %.2f changed result from %v to %v", pr.name, ang, base, got)
			}
		}
	}
}

func TestOverlapsDegenerate(t *testing.T) {
	// Zero-area rect projects to a single point on every axis.
	point := Rect{5, 5, 0, 0}.Corners()
	inside := Rect{0, 0, 10, 10}.Corners()
	outside := Rect{20, 20, 10, 10}.Corners()

	if !Overlaps(point[:], inside[:]) {
		t.Fatalf("degenerate rect inside should overlap")
	}
	if Overlaps(point[:], outside[:]) {
		t.Fatalf("degenerate rect outside should not overlap")
	}
}

func TestRotatedCorners(t *testing.T) {
	r := Rect{0, 0, 10, 4}
	got := RotatedCorners(r, math.Pi)
	// A half-turn about the center maps each corner onto its opposite.
	want := r.Corners()
	for i := 0; i < 4; i++ {
		opp := want[(i+2)%4]
		if math.Abs(got[i].X-opp.X) > 1e-9 || math.Abs(got[i].Y-opp.Y) > 1e-9 {
			t.Fatalf("corner %d = %v, want %v", i, got[i], opp)
		}
	}

	if RotatedCorners(r, 0) != r.Corners() {
		t.Fatalf("zero rotation should return plain corners")
	}
}

func TestCirclePoint(t *testing.T) {
	center := cp.Vector{X: 100, Y: 200}
	cases := []struct {
		angle float64
		want  cp.Vector
	}{
		{0, cp.Vector{X: 100, Y: 250}},   // sin(0)=0, cos(0)=1
		{90, cp.Vector{X: 150, Y: 200}},  // sin=1, cos=0
		{180, cp.Vector{X: 100, Y: 150}}, // sin=0, cos=-1
	}
	for _, c := range cases {
		got := CirclePoint(center, 50, c.angle)
		if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
			t.Fatalf("CirclePoint(%v) = %v, want %v", c.angle, got, c.want)
		}
	}
}
