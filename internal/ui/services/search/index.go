package search

import (
	"github.com/tchap/go-patricia/v2/patricia"

	"countrypick/internal/domain"
)

// CodeIndex maps normalized short codes to positions in the item list
type CodeIndex struct {
	trie *patricia.Trie
}

// NewCodeIndex indexes items by short code. Positions are kept in list order.
func NewCodeIndex(items []domain.Item) *CodeIndex {
	trie := patricia.NewTrie()
	for i, item := range items {
		key := patricia.Prefix(Normalize(item.ShortCode))
		if existing := trie.Get(key); existing != nil {
			trie.Set(key, append(existing.([]int), i))
			continue
		}
		trie.Insert(key, []int{i})
	}
	return &CodeIndex{trie: trie}
}

// Lookup returns the positions whose code equals the normalized query
func (ix *CodeIndex) Lookup(query string) []int {
	q := Normalize(query)
	if q == "" {
		return nil
	}
	if positions := ix.trie.Get(patricia.Prefix(q)); positions != nil {
		return positions.([]int)
	}
	return nil
}

// WithPrefix returns the positions of every code starting with prefix, in
// code order
func (ix *CodeIndex) WithPrefix(prefix string) []int {
	var result []int
	_ = ix.trie.VisitSubtree(patricia.Prefix(Normalize(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		result = append(result, item.([]int)...)
		return nil
	})
	return result
}
