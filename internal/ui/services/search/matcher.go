package search

import (
	"strings"
	"unicode/utf8"

	"countrypick/internal/domain"
)

// Normalize case-folds text for matching. No trimming and no diacritic
// folding: " fr" does not match "FR".
func Normalize(s string) string {
	return strings.ToLower(s)
}

// MatchesCode reports whether the query equals the item's short code
func MatchesCode(item domain.Item, query string) bool {
	return Normalize(item.ShortCode) == Normalize(query)
}

// MatchesName reports whether the item's name contains the query.
// An empty query matches every name.
func MatchesName(item domain.Item, query string) bool {
	return strings.Contains(Normalize(item.DisplayName), Normalize(query))
}

// NameOffset returns the character offset of the query's first occurrence in
// the item's normalized name, or -1.
func NameOffset(item domain.Item, query string) int {
	return runeOffset(Normalize(item.DisplayName), Normalize(query))
}

func runeOffset(name, query string) int {
	idx := strings.Index(name, query)
	if idx < 0 {
		return -1
	}
	return utf8.RuneCountInString(name[:idx])
}
