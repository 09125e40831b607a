package component

// Unmeasured is the width/height sentinel meaning "derive from the
// rendered size". It is replaced by the on-screen size once per drag
// cycle, on first use, and restored when the cycle ends.
const Unmeasured = -1.0

type Dimensions struct {
	Width  float64
	Height float64

	// Last size reported by the render layer, used as fallback while
	// Width/Height hold the sentinel.
	RenderedWidth  float64
	RenderedHeight float64
}

// Measured returns the effective size, resolving the sentinel against
// the rendered size without consuming it.
func (d *Dimensions) Measured() (w, h float64) {
	if d == nil {
		return 0, 0
	}
	w, h = d.Width, d.Height
	if w < 0 {
		w = d.RenderedWidth
	}
	if h < 0 {
		h = d.RenderedHeight
	}
	return w, h
}

// Resolve replaces the sentinel with the rendered size. Subsequent
// calls within the same drag cycle are no-ops.
func (d *Dimensions) Resolve() {
	if d == nil {
		return
	}
	if d.Width < 0 {
		d.Width = d.RenderedWidth
	}
	if d.Height < 0 {
		d.Height = d.RenderedHeight
	}
}

// Reset restores the unmeasured sentinel.
func (d *Dimensions) Reset() {
	if d == nil {
		return
	}
	d.Width = Unmeasured
	d.Height = Unmeasured
}

var DimensionsComponent = NewComponent[Dimensions]()
