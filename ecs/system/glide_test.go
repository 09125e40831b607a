package system

import (
	"testing"

	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/component"
)

func TestGlideEasesTowardTransform(t *testing.T) {
	f := newFixture()
	f.addPiece("a")
	e := f.addToken(t, "a", "tokens", 100, 60, 0, 20, 20)
	gl, _ := ecs.Get(f.w, e, component.GlideComponent)
	gl.X, gl.Y = 0, 0

	g := NewGlideSystem()
	g.Update(f.w)

	if gl.X != 25 || gl.Y != 15 {
		t.Fatalf("expected one quarter of the gap, got (%v,%v)", gl.X, gl.Y)
	}
	if !gl.Active {
		t.Fatalf("transition should be active while easing")
	}
}

func TestGlideSnapsWhenClose(t *testing.T) {
	f := newFixture()
	f.addPiece("a")
	e := f.addToken(t, "a", "tokens", 100, 60, 0, 20, 20)
	gl, _ := ecs.Get(f.w, e, component.GlideComponent)
	gl.X, gl.Y = 99.7, 59.8
	gl.Active = true

	NewGlideSystem().Update(f.w)

	if gl.X != 100 || gl.Y != 60 {
		t.Fatalf("expected snap to (100,60), got (%v,%v)", gl.X, gl.Y)
	}
	if gl.Active {
		t.Fatalf("transition should finish on snap")
	}
}

func TestGlideSnapsWhenNotAnimated(t *testing.T) {
	f := newFixture()
	f.addPiece("a")
	e := f.addToken(t, "a", "tokens", 100, 60, 0, 20, 20)
	vis, _ := ecs.Get(f.w, e, component.VisualComponent)
	vis.Animated = false
	gl, _ := ecs.Get(f.w, e, component.GlideComponent)
	gl.X, gl.Y = 0, 0
	gl.Active = true

	NewGlideSystem().Update(f.w)

	if gl.X != 100 || gl.Y != 60 || gl.Active {
		t.Fatalf("non-animated tokens render at the transform: (%v,%v) active=%v", gl.X, gl.Y, gl.Active)
	}
}

func TestStopGlide(t *testing.T) {
	f := newFixture()
	f.addPiece("a")
	e := f.addToken(t, "a", "tokens", 100, 60, 0, 20, 20)
	gl, _ := ecs.Get(f.w, e, component.GlideComponent)
	gl.Active = true

	StopGlide(f.w, e)
	if gl.Active {
		t.Fatalf("stop should deactivate the transition")
	}
}
