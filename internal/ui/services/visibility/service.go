package visibility

import (
	"countrypick/internal/ui/services/events"
)

// Service decides whether the suggestion panel is open
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new visibility service with the panel closed
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// IsOpen reports whether the panel is open
func (s *Service) IsOpen() bool {
	return s.state.Open
}

// Open shows the panel
func (s *Service) Open(reason string) {
	s.set(true, reason)
}

// Close hides the panel
func (s *Service) Close(reason string) {
	s.set(false, reason)
}

// Toggle flips the panel
func (s *Service) Toggle() {
	s.set(!s.state.Open, "toggle")
}

func (s *Service) set(open bool, reason string) {
	if s.state.Open == open {
		return
	}
	s.state.Open = open
	s.bus.Publish(PanelToggledEvent{Open: open, Reason: reason})
}
