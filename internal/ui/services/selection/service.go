package selection

import (
	"context"

	"github.com/charmbracelet/log"

	"countrypick/internal/domain"
	"countrypick/internal/eventbus"
	"countrypick/internal/logging"
	"countrypick/internal/storage"
)

// Service owns the committed selection and mirrors its short code into the
// persistent store. The in-memory selection is authoritative: storage
// failures are logged and published, never returned.
type Service struct {
	state  *State
	store  storage.Store
	key    string
	bus    eventbus.EventBus
	logger *log.Logger
}

// NewService creates a new selection service. bus may be nil.
func NewService(store storage.Store, key string, bus eventbus.EventBus, logger *log.Logger) *Service {
	return &Service{
		state:  &State{},
		store:  store,
		key:    key,
		bus:    bus,
		logger: logging.Component(logger, "selection"),
	}
}

// Committed returns the committed item, if any
func (s *Service) Committed() (domain.Item, bool) {
	if s.state.Committed == nil {
		return domain.Item{}, false
	}
	return *s.state.Committed, true
}

// CommittedVisible reports whether the committed item should be displayed
func (s *Service) CommittedVisible() bool {
	return s.state.Committed != nil && !s.state.Typing
}

// SetTyping hides the committed display while a non-empty query is typed
func (s *Service) SetTyping(typing bool) {
	s.state.Typing = typing
}

// Commit makes item the committed selection and persists its code
func (s *Service) Commit(ctx context.Context, item domain.Item) {
	committed := item
	s.state.Committed = &committed
	s.state.Typing = false
	s.logger.Debug("selection committed", "code", item.ShortCode)

	if err := s.store.Set(ctx, s.key, item.ShortCode); err != nil {
		s.storageFailed("set", err)
	}
	s.publish(eventbus.SelectionCommittedEvent{Item: item})
}

// Clear drops the committed selection and its persisted code
func (s *Service) Clear(ctx context.Context) {
	s.state.Committed = nil
	s.state.Typing = false
	s.logger.Debug("selection cleared")

	if err := s.store.Remove(ctx, s.key); err != nil {
		s.storageFailed("remove", err)
	}
	s.publish(eventbus.SelectionClearedEvent{})
}

// Restore reads the persisted code the first time a non-empty list is
// available. A missing, stale or unreadable value leaves the selection unset.
// It reports whether a selection was restored.
func (s *Service) Restore(ctx context.Context, items ItemLookup) bool {
	if s.state.RestoreAttempted || !items.Loaded() {
		return false
	}
	s.state.RestoreAttempted = true

	code, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("could not read persisted selection", "key", s.key, "err", err)
		return false
	}
	if !ok || code == "" {
		return false
	}

	item, _, found := items.FindByCode(code)
	if !found {
		s.logger.Debug("persisted selection not in list", "code", code)
		return false
	}

	s.state.Committed = &item
	s.publish(eventbus.SelectionRestoredEvent{Item: item})
	return true
}

func (s *Service) storageFailed(op string, err error) {
	s.logger.Warn("could not persist selection", "op", op, "key", s.key, "err", err)
	s.publish(eventbus.StorageFailedEvent{Op: op, Key: s.key, Err: err})
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
