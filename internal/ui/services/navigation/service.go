package navigation

import (
	"countrypick/internal/ui/services/events"
)

// Service owns the highlight index over the active list
type Service struct {
	state     *State
	bus       events.EventBus
	listLenFn func() int // Function to get the active list length
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Highlight:      Idle,
			ViewportOffset: 0,
			ViewportHeight: 10,
		},
		bus: bus,
	}
}

// SetListLengthFunction sets the function to query the active list length
func (s *Service) SetListLengthFunction(fn func() int) {
	s.listLenFn = fn
}

// Highlight returns the current highlight index
func (s *Service) Highlight() int {
	return s.state.Highlight
}

// ViewportOffset returns the first visible row
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// ViewportHeight returns how many rows the panel shows
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.moveTo(Transition(s.state.Highlight, direction, s.listLen()))
}

// Reset returns to Idle
func (s *Service) Reset() {
	s.state.ViewportOffset = 0
	s.moveTo(Idle)
}

// Clamp re-applies the range invariant after the active list changed
func (s *Service) Clamp() {
	s.moveTo(Clamp(s.state.Highlight, s.listLen()))
	s.ensureVisible()
}

// MoveToIndex highlights a specific index, clamped to the list
func (s *Service) MoveToIndex(index int) {
	s.moveTo(Clamp(index, s.listLen()))
}

func (s *Service) moveTo(index int) {
	old := s.state.Highlight
	s.state.Highlight = index
	s.ensureVisible()

	if old != index {
		s.bus.Publish(HighlightChangedEvent{
			OldIndex: old,
			NewIndex: index,
		})
	}
}

func (s *Service) listLen() int {
	if s.listLenFn == nil {
		return 0
	}
	return s.listLenFn()
}

func (s *Service) ensureVisible() {
	offset := s.state.ViewportOffset
	cursor := s.state.Highlight

	switch {
	case cursor == Idle:
	case cursor < offset:
		offset = cursor
	case cursor >= offset+s.state.ViewportHeight:
		offset = cursor - s.state.ViewportHeight + 1
	}

	// Don't leave blank rows at the bottom when the list shrinks
	if maxOffset := max(s.listLen()-s.state.ViewportHeight, 0); offset > maxOffset {
		offset = maxOffset
	}

	s.state.ViewportOffset = offset
}
