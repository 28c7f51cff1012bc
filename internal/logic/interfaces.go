package logic

import (
	"errors"

	"countrypick/internal/domain"
)

// ErrAlreadyLoaded is returned when a second list is offered to an ItemStore.
// The ItemList is built once per session and never re-sorted.
var ErrAlreadyLoaded = errors.New("item list already loaded")

// ItemStore provides access to the session's ordered item list
type ItemStore interface {
	SetItems(items []domain.Item) error
	Items() []domain.Item
	Item(index int) (domain.Item, bool)
	FindByCode(code string) (domain.Item, int, bool)
	Len() int
	Loaded() bool
}

// ItemsLoadedEvent is published on the UI bus once the store accepts a list
type ItemsLoadedEvent struct {
	Count int
}
