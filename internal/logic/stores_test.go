package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countrypick/internal/domain"
)

func sampleItems() []domain.Item {
	return []domain.Item{
		{DisplayName: "France", ShortCode: "FR", AltCode: "FRA"},
		{DisplayName: "Germany", ShortCode: "DE", AltCode: "DEU"},
		{DisplayName: "Spain", ShortCode: "ES", AltCode: "ESP"},
	}
}

func TestMemoryItemStoreAcceptsListOnce(t *testing.T) {
	s := NewMemoryItemStore()
	assert.False(t, s.Loaded())
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.SetItems(sampleItems()))
	assert.True(t, s.Loaded())
	assert.Equal(t, 3, s.Len())

	err := s.SetItems([]domain.Item{{DisplayName: "Italy", ShortCode: "IT"}})
	assert.ErrorIs(t, err, ErrAlreadyLoaded)
	assert.Equal(t, "France", s.Items()[0].DisplayName)
}

func TestMemoryItemStoreEmptyListIsNotLoaded(t *testing.T) {
	s := NewMemoryItemStore()
	require.NoError(t, s.SetItems(nil))
	assert.False(t, s.Loaded())
}

func TestMemoryItemStoreLookups(t *testing.T) {
	s := NewMemoryItemStore()
	require.NoError(t, s.SetItems(sampleItems()))

	item, idx, ok := s.FindByCode("de")
	require.True(t, ok)
	assert.Equal(t, "Germany", item.DisplayName)
	assert.Equal(t, 1, idx)

	_, idx, ok = s.FindByCode("XX")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	item, ok = s.Item(2)
	require.True(t, ok)
	assert.Equal(t, "Spain", item.DisplayName)

	_, ok = s.Item(3)
	assert.False(t, ok)
	_, ok = s.Item(-1)
	assert.False(t, ok)
}

func TestMemoryItemStoreItemsReturnsCopy(t *testing.T) {
	s := NewMemoryItemStore()
	require.NoError(t, s.SetItems(sampleItems()))

	items := s.Items()
	items[0].DisplayName = "changed"
	assert.Equal(t, "France", s.Items()[0].DisplayName)
}
