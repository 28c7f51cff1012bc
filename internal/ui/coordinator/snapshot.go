package coordinator

import "countrypick/internal/domain"

// ListKind says which list navigation currently targets
type ListKind int

const (
	ListItems ListKind = iota
	ListSuggestions
)

func (k ListKind) String() string {
	if k == ListSuggestions {
		return "suggestions"
	}
	return "items"
}

// Snapshot is the render-facing view of the engine after an event
type Snapshot struct {
	ActiveList       []domain.Item
	ActiveKind       ListKind
	Suggestions      []domain.Item
	HighlightIndex   int
	TempSelection    *domain.Item
	Committed        *domain.Item
	CommittedVisible bool
	Query            string
	Open             bool
	Loaded           bool
	ViewportOffset   int
	ViewportHeight   int
}

// NoMatches reports a non-empty query that matched nothing
func (s Snapshot) NoMatches() bool {
	return s.Query != "" && len(s.Suggestions) == 0
}

// IsCommitted reports whether item is the committed selection
func (s Snapshot) IsCommitted(item domain.Item) bool {
	return s.Committed != nil && s.Committed.SameAs(item)
}

// Visible returns the slice of the active list inside the viewport and the
// index of its first row
func (s Snapshot) Visible() ([]domain.Item, int) {
	start := min(s.ViewportOffset, len(s.ActiveList))
	end := min(start+s.ViewportHeight, len(s.ActiveList))
	return s.ActiveList[start:end], start
}
