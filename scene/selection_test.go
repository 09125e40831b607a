package scene

import (
	"testing"

	"github.com/milk9111/tabletop/ecs"
)

func TestSelectionAddRemoveOrder(t *testing.T) {
	s := NewSelection()
	a, b, c := piece("a"), piece("b"), piece("c")

	s.Add(a)
	s.Add(b)
	s.Add(c)
	s.Add(a) // duplicate is a no-op

	if s.Len() != 3 {
		t.Fatalf("expected 3 selected, got %d", s.Len())
	}
	if got := ids(s.Pieces()); !equalIDs(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected selection order, got %v", got)
	}
	if !s.Contains(b) || s.Contains(piece("missing")) {
		t.Fatalf("contains broken")
	}

	s.Remove(b)
	if got := ids(s.Pieces()); !equalIDs(got, []string{"a", "c"}) {
		t.Fatalf("remove broke the order: %v", got)
	}
	s.Remove(b) // no-op

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("clear should empty the selection")
	}
}

func TestSelectionExclusivityToken(t *testing.T) {
	w := ecs.NewWorld()
	e1 := ecs.CreateEntity(w)
	e2 := ecs.CreateEntity(w)

	s := NewSelection()
	if s.Holder().Valid() {
		t.Fatalf("fresh selection should have no holder")
	}

	if !s.Claim(e1) {
		t.Fatalf("first claim should succeed")
	}
	if s.Claim(e2) {
		t.Fatalf("second claim should fail while held")
	}
	if s.Holder() != e1 {
		t.Fatalf("holder should be the first claimant")
	}

	s.Release()
	if s.Holder().Valid() {
		t.Fatalf("release should drop the holder")
	}
	if !s.Claim(e2) {
		t.Fatalf("claim after release should succeed")
	}
}

func TestSelectionClearReleasesToken(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)

	s := NewSelection()
	s.Add(piece("a"))
	s.Claim(e)
	s.Clear()

	if s.Holder().Valid() {
		t.Fatalf("clear should release the exclusivity token")
	}
}
