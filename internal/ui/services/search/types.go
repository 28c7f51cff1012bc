package search

import "countrypick/internal/domain"

// State holds search state
type State struct {
	Query       string
	Suggestions []domain.Item
}

// Event types
type SuggestionsChangedEvent struct {
	Query string
	Count int
}
