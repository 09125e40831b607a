package system

import (
	"testing"

	"github.com/milk9111/tabletop/ecs/component"
)

func token(x, y, z, w, h float64) (*component.Transform, *component.Dimensions) {
	return &component.Transform{X: x, Y: y, Z: z},
		&component.Dimensions{Width: w, Height: h}
}

func TestProximate(t *testing.T) {
	cases := []struct {
		name string
		ax, ay, az, aw, ah float64
		bx, by, bz, bw, bh float64
		want bool
	}{
		// 48x48 tokens: threshold ((48+48)/4+(48+48)/4)*0.95 = 45.6.
		{"overlapping", 0, 0, 0, 48, 48, 10, 0, 0, 48, 48, true},
		{"inside_threshold", 0, 0, 0, 48, 48, 45, 0, 0, 48, 48, true},
		{"outside_threshold", 0, 0, 0, 48, 48, 46, 0, 0, 48, 48, false},
		{"exactly_at_threshold", 0, 0, 0, 48, 48, 45.6, 0, 0, 48, 48, false},
		{"diagonal_inside", 0, 0, 0, 48, 48, 30, 30, 0, 48, 48, true},
		{"diagonal_outside", 0, 0, 0, 48, 48, 33, 33, 0, 48, 48, false},
		// Tiny tokens fall back to the 25-unit floor.
		{"tiny_floor_inside", 0, 0, 0, 4, 4, 20, 0, 0, 4, 4, true},
		{"tiny_floor_outside", 0, 0, 0, 4, 4, 26, 0, 0, 4, 4, false},
		// The stacking index counts toward the distance.
		{"stacked_apart", 0, 0, 0, 48, 48, 0, 0, 50, 48, 48, false},
		{"stacked_close", 0, 0, 0, 48, 48, 0, 0, 10, 48, 48, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			at, ad := token(c.ax, c.ay, c.az, c.aw, c.ah)
			bt, bd := token(c.bx, c.by, c.bz, c.bw, c.bh)
			if got := proximate(at, ad, bt, bd); got != c.want {
				t.Fatalf("proximate = %v, want %v", got, c.want)
			}
			// Distance and threshold are both symmetric in the pair.
			if got := proximate(bt, bd, at, ad); got != c.want {
				t.Fatalf("proximate not symmetric for %s", c.name)
			}
		})
	}
}

func TestProximateSentinelFallsBackToRenderedSize(t *testing.T) {
	at := &component.Transform{}
	ad := &component.Dimensions{Width: component.Unmeasured, Height: component.Unmeasured, RenderedWidth: 48, RenderedHeight: 48}
	bt := &component.Transform{X: 45}
	bd := &component.Dimensions{Width: 48, Height: 48}

	if !proximate(at, ad, bt, bd) {
		t.Fatalf("unresolved size should fall back to the rendered size")
	}
	if ad.Width != component.Unmeasured {
		t.Fatalf("proximity check must not consume the sentinel")
	}
}

func TestProximateNilInputs(t *testing.T) {
	at, ad := token(0, 0, 0, 48, 48)
	if proximate(nil, ad, at, ad) || proximate(at, nil, at, ad) || proximate(at, ad, nil, ad) || proximate(at, ad, at, nil) {
		t.Fatalf("nil inputs should never be proximate")
	}
}
