package sorting

import "countrypick/internal/domain"

// State holds sorting state
type State struct {
	Locale string
}

// Event types
type ListPreparedEvent struct {
	Count   int
	Dropped []domain.Item // duplicate codes or missing fields
}
