package component

// TokenView ties a movable entity to the piece it represents.
type TokenView struct {
	PieceID  string
	Layer    string
	Disabled bool
}

var TokenViewComponent = NewComponent[TokenView]()
