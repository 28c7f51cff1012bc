package domain

import "strings"

// Item represents one selectable reference-list entry (a country)
type Item struct {
	DisplayName string // Name shown and matched against
	ShortCode   string // 2-letter code, unique across the list (case-insensitive)
	AltCode     string // 3-letter code, informational only
	IconRef     string // Flag glyph or image reference, may be empty
}

// Key returns the identity of an item: its case-folded short code
func (i Item) Key() string {
	return strings.ToLower(i.ShortCode)
}

// SameAs reports whether two items share a short code
func (i Item) SameAs(other Item) bool {
	return i.Key() == other.Key()
}

// Label renders the "CODE: Name" form used in the selection display
func (i Item) Label() string {
	if i.ShortCode == "" {
		return i.DisplayName
	}
	return i.ShortCode + ": " + i.DisplayName
}

// LoadProgress represents the item source state
type LoadProgress struct {
	IsLoading bool
	Loaded    bool
	Count     int
	Failed    bool
}
