package component

// Visual carries the render-layer hints the drag core toggles while a
// group move is in progress. Neither flag is a physical constraint.
type Visual struct {
	Interactive bool
	Animated    bool
}

var VisualComponent = NewComponent[Visual]()
