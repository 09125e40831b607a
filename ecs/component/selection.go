package component

// SelectState is a movable's participation in the active selection.
// Magnetic is transient: it only exists during a drag gesture and
// resolves to Selected or None when the gesture ends.
type SelectState int

const (
	SelectNone SelectState = iota
	Selected
	Magnetic
)

type Selection struct {
	State SelectState
}

var SelectionComponent = NewComponent[Selection]()
