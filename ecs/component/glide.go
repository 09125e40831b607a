package component

// Glide is the rendered position, trailing the logical transform while
// an animated transition is in flight.
type Glide struct {
	X      float64
	Y      float64
	Active bool
}

var GlideComponent = NewComponent[Glide]()
