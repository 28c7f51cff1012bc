package search

import (
	"sort"

	"countrypick/internal/domain"
)

type nameMatch struct {
	item   domain.Item
	offset int
}

// Rank builds the suggestion list for query over an alphabetically ordered
// item list: exact code matches first, then name matches ordered by where the
// query occurs, ties kept in list order. An empty query yields no suggestions.
func Rank(items []domain.Item, query string) []domain.Item {
	if query == "" {
		return nil
	}
	var codeMatches []domain.Item
	var names []nameMatch
	for _, item := range items {
		if MatchesCode(item, query) {
			codeMatches = append(codeMatches, item)
		}
		if MatchesName(item, query) {
			names = append(names, nameMatch{item: item, offset: NameOffset(item, query)})
		}
	}

	return merge(codeMatches, names)
}

// merge orders name matches and drops the ones that duplicate the top code match
func merge(codeMatches []domain.Item, names []nameMatch) []domain.Item {
	sort.SliceStable(names, func(i, j int) bool {
		return names[i].offset < names[j].offset
	})

	result := make([]domain.Item, 0, len(codeMatches)+len(names))
	result = append(result, codeMatches...)
	for _, m := range names {
		if len(codeMatches) > 0 && m.item.DisplayName == codeMatches[0].DisplayName {
			continue
		}
		result = append(result, m.item)
	}
	return result
}
