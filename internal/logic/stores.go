package logic

import (
	"strings"
	"sync"

	"countrypick/internal/domain"
)

// MemoryItemStore is an in-memory implementation of ItemStore
type MemoryItemStore struct {
	mu     sync.RWMutex
	items  []domain.Item
	byCode map[string]int
	loaded bool
}

// NewMemoryItemStore creates a new memory-based item store
func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{
		byCode: make(map[string]int),
	}
}

// SetItems accepts the sorted list. Only the first call wins.
func (s *MemoryItemStore) SetItems(items []domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return ErrAlreadyLoaded
	}

	s.items = make([]domain.Item, len(items))
	copy(s.items, items)
	for i, item := range s.items {
		if _, ok := s.byCode[item.Key()]; !ok {
			s.byCode[item.Key()] = i
		}
	}
	s.loaded = true
	return nil
}

func (s *MemoryItemStore) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Item, len(s.items))
	copy(result, s.items)
	return result
}

func (s *MemoryItemStore) Item(index int) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return domain.Item{}, false
	}
	return s.items[index], true
}

// FindByCode looks an item up by short code, ignoring case
func (s *MemoryItemStore) FindByCode(code string) (domain.Item, int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byCode[strings.ToLower(code)]
	if !ok {
		return domain.Item{}, -1, false
	}
	return s.items[i], i, true
}

func (s *MemoryItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Loaded reports whether a non-empty list has been accepted
func (s *MemoryItemStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded && len(s.items) > 0
}
