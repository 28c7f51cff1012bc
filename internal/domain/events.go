package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemsLoaded        EventType = "ItemsLoaded"
	EventSourceFailed       EventType = "SourceFailed"
	EventSelectionCommitted EventType = "SelectionCommitted"
	EventSelectionCleared   EventType = "SelectionCleared"
	EventSelectionRestored  EventType = "SelectionRestored"
	EventStorageFailed      EventType = "StorageFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemsLoadedEvent is emitted when the item source resolves
type ItemsLoadedEvent struct {
	Items  []Item
	Source string
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// SourceFailedEvent is emitted when the item source gives up.
// The engine treats this exactly like "not yet resolved".
type SourceFailedEvent struct {
	Source string
	Err    error
}

func (e SourceFailedEvent) Type() EventType { return EventSourceFailed }

// SelectionCommittedEvent is emitted after a commit
type SelectionCommittedEvent struct {
	Item Item
}

func (e SelectionCommittedEvent) Type() EventType { return EventSelectionCommitted }

// SelectionClearedEvent is emitted after the committed selection is cleared
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// SelectionRestoredEvent is emitted when a persisted selection is found in the list
type SelectionRestoredEvent struct {
	Item Item
}

func (e SelectionRestoredEvent) Type() EventType { return EventSelectionRestored }

// StorageFailedEvent is emitted when a persistence write fails.
// In-memory state is unaffected.
type StorageFailedEvent struct {
	Op  string // "set" or "remove"
	Key string
	Err error
}

func (e StorageFailedEvent) Type() EventType { return EventStorageFailed }
