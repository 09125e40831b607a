package component

// RegionSelect is an in-progress rubber-band rectangle. The input
// system attaches it to a throwaway entity while the gesture is active
// so the render system can draw it.
type RegionSelect struct {
	StartX float64
	StartY float64
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var RegionSelectComponent = NewComponent[RegionSelect]()
