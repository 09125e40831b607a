package component

import "image/color"

// Sprite is a token's visual: a flat colored rectangle with an
// optional rotation in radians.
type Sprite struct {
	Width    float64
	Height   float64
	Color    color.NRGBA
	Rotation float64
}

var SpriteComponent = NewComponent[Sprite]()
