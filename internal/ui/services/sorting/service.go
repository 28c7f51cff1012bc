package sorting

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"countrypick/internal/domain"
	"countrypick/internal/ui/services/events"
)

// Service turns the raw source list into the session's ItemList
type Service struct {
	state    *State
	bus      events.EventBus
	collator *collate.Collator
}

// NewService creates a sorting service for a BCP 47 locale. Unknown locales
// fall back to English collation.
func NewService(bus events.EventBus, locale string) *Service {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Service{
		state:    &State{Locale: tag.String()},
		bus:      bus,
		collator: collate.New(tag),
	}
}

// Locale returns the collation locale in use
func (s *Service) Locale() string {
	return s.state.Locale
}

// Prepare drops unusable entries and sorts by display name. The first item
// wins when two share a case-folded short code. The input is not modified.
func (s *Service) Prepare(items []domain.Item) []domain.Item {
	seen := make(map[string]bool, len(items))
	result := make([]domain.Item, 0, len(items))
	var dropped []domain.Item

	for _, item := range items {
		if strings.TrimSpace(item.DisplayName) == "" || item.ShortCode == "" || seen[item.Key()] {
			dropped = append(dropped, item)
			continue
		}
		seen[item.Key()] = true
		result = append(result, item)
	}

	s.SortItems(result)

	s.bus.Publish(ListPreparedEvent{
		Count:   len(result),
		Dropped: dropped,
	})
	return result
}

// SortItems sorts in place by display name using locale collation (stable)
func (s *Service) SortItems(items []domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return s.collator.CompareString(items[i].DisplayName, items[j].DisplayName) < 0
	})
}
