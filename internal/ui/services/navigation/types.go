package navigation

// Idle is the highlight index when nothing is highlighted
const Idle = -1

// State holds all navigation-related state
type State struct {
	Highlight      int
	ViewportOffset int
	ViewportHeight int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// HighlightChangedEvent is published whenever the highlight index moves
type HighlightChangedEvent struct {
	OldIndex int
	NewIndex int
}
