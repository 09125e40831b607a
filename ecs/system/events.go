package system

import (
	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/geom"
)

// Event types routed from the pointer layer to the drag system.
const (
	EventPickStart  = "pick-start"
	EventPickObject = "pick-object"
	EventPickRegion = "pick-region"
	EventDragMove   = "drag-move"
	EventDragEnd    = "drag-end"
	EventGestureEnd = "gesture-end"
	EventCongregate = "congregate"
)

// PickStart fires when a pointer goes down on a token.
type PickStart struct {
	Entity   ecs.Entity
	Magnetic bool
}

// PickObject fires on a direct click/tap that did not turn into a drag.
type PickObject struct {
	Entity ecs.Entity
}

// PickRegion fires when a rubber-band selection is released.
type PickRegion struct {
	Region geom.Rect
}

// DragMove fires once per tick while a token drag is in progress.
type DragMove struct {
	Entity ecs.Entity
	DX     float64
	DY     float64
	DZ     float64
}

// DragEnd fires when a token drag is released.
type DragEnd struct {
	Entity ecs.Entity
	DX     float64
	DY     float64
	DZ     float64
}

// GestureEnd fires on pointer release for gestures that never became a
// drag, so the exclusivity token doesn't leak into the next gesture.
type GestureEnd struct{}

// CongregateRequest gathers pieces around a point. An empty PieceIDs
// list means "the current selection".
type CongregateRequest struct {
	X        float64
	Y        float64
	PieceIDs []string
}
