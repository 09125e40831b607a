package component

// Transform is a token's logical position on the table. Z is the
// stacking index; it is not a depth coordinate, but magnetism treats
// it as one (see the drag system).
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
