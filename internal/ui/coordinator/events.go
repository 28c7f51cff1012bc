package coordinator

import "countrypick/internal/domain"

// Key is a navigation key the engine understands
type Key string

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyEnter Key = "enter"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

// Event is one input to the engine
type Event interface {
	event()
}

// QueryChanged carries the full input text after an edit
type QueryChanged struct {
	Text string
}

// KeyPressed carries a navigation key
type KeyPressed struct {
	Key Key
}

// ItemClicked commits the clicked item
type ItemClicked struct {
	Item domain.Item
}

// RowHovered moves the highlight to the row under the pointer
type RowHovered struct {
	Index int
}

// OutsideInteraction is a pointer or cancel action outside the widget
type OutsideInteraction struct{}

// ToggleVisibility flips the suggestion panel (label click)
type ToggleVisibility struct{}

// ItemsAvailable delivers the raw list once the source resolves
type ItemsAvailable struct {
	Items []domain.Item
}

// ClearRequested clears the committed selection
type ClearRequested struct{}

func (QueryChanged) event()       {}
func (KeyPressed) event()         {}
func (ItemClicked) event()        {}
func (RowHovered) event()         {}
func (OutsideInteraction) event() {}
func (ToggleVisibility) event()   {}
func (ItemsAvailable) event()     {}
func (ClearRequested) event()     {}
