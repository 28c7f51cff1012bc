package search

import (
	"countrypick/internal/domain"
	"countrypick/internal/ui/services/events"
)

// Service ranks suggestions against the loaded list using the code index
type Service struct {
	state *State
	bus   events.EventBus
	items []domain.Item
	index *CodeIndex
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
		index: NewCodeIndex(nil),
	}
}

// SetItems installs the ordered item list and rebuilds the index
func (s *Service) SetItems(items []domain.Item) {
	s.items = items
	s.index = NewCodeIndex(items)
	s.recompute()
}

// SetQuery changes the query and recomputes suggestions
func (s *Service) SetQuery(query string) {
	s.state.Query = query
	s.recompute()
}

// Query returns the raw query text
func (s *Service) Query() string {
	return s.state.Query
}

// Suggestions returns the ranked suggestions for the current query
func (s *Service) Suggestions() []domain.Item {
	return s.state.Suggestions
}

// Suggest ranks query against the list without touching state
func (s *Service) Suggest(query string) []domain.Item {
	if query == "" {
		return nil
	}
	positions := s.index.Lookup(Normalize(query))
	codeMatches := make([]domain.Item, 0, len(positions))
	for _, i := range positions {
		codeMatches = append(codeMatches, s.items[i])
	}

	var names []nameMatch
	for _, item := range s.items {
		if MatchesName(item, query) {
			names = append(names, nameMatch{item: item, offset: NameOffset(item, query)})
		}
	}
	return merge(codeMatches, names)
}

func (s *Service) recompute() {
	old := len(s.state.Suggestions)
	s.state.Suggestions = s.Suggest(s.state.Query)
	if old != len(s.state.Suggestions) || s.state.Query != "" {
		s.bus.Publish(SuggestionsChangedEvent{
			Query: s.state.Query,
			Count: len(s.state.Suggestions),
		})
	}
}

// CodesWithPrefix lists items whose short code starts with prefix, in code order
func (s *Service) CodesWithPrefix(prefix string) []domain.Item {
	positions := s.index.WithPrefix(prefix)
	result := make([]domain.Item, 0, len(positions))
	for _, i := range positions {
		result = append(result, s.items[i])
	}
	return result
}
