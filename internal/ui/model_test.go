package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countrypick/internal/config"
	"countrypick/internal/domain"
	"countrypick/internal/eventbus"
	"countrypick/internal/logging"
	"countrypick/internal/logic"
	"countrypick/internal/storage"
	"countrypick/internal/ui/coordinator"
	inputtypes "countrypick/internal/ui/input/types"
	"countrypick/internal/ui/services/events"
	"countrypick/internal/ui/services/selection"
)

func testItems() []domain.Item {
	return []domain.Item{
		{DisplayName: "Spain", ShortCode: "ES", AltCode: "ESP", IconRef: "🇪🇸"},
		{DisplayName: "Germany", ShortCode: "DE", AltCode: "DEU", IconRef: "🇩🇪"},
		{DisplayName: "France", ShortCode: "FR", AltCode: "FRA", IconRef: "🇫🇷"},
	}
}

func newTestModel(t *testing.T) (*Model, storage.Store) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.ShowIcons = false

	store := storage.NewMemoryStore()
	bus := events.NewBus()
	sel := selection.NewService(store, config.DefaultSelectionKey, nil, logging.Discard())
	engine := coordinator.NewEngine(bus, logic.NewMemoryItemStore(), sel, "en", logging.Discard())

	m := NewModel(context.Background(), engine, cfg, nil, bus, logging.Discard())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, store
}

func loaded(t *testing.T) (*Model, storage.Store) {
	t.Helper()
	m, store := newTestModel(t)
	m.Update(itemsLoadedMsg{items: testItems()})
	return m, store
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func click(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func storedCode(t *testing.T, store storage.Store) (string, bool) {
	t.Helper()
	code, ok, err := store.Get(context.Background(), config.DefaultSelectionKey)
	require.NoError(t, err)
	return code, ok
}

func TestItemsLoadedUpdatesProgress(t *testing.T) {
	m, _ := loaded(t)

	assert.True(t, m.progress.Loaded)
	assert.Equal(t, 3, m.progress.Count)
	assert.Contains(t, m.View(), "3 countries")
}

func TestWaitForItems(t *testing.T) {
	ch := make(chan []domain.Item, 1)
	ch <- testItems()
	close(ch)

	msg := waitForItems(ch)()
	require.IsType(t, itemsLoadedMsg{}, msg)
	assert.Len(t, msg.(itemsLoadedMsg).items, 3)

	msg = waitForItems(ch)()
	assert.IsType(t, sourceFailedMsg{}, msg)

	assert.Nil(t, waitForItems(nil))
}

func TestSourceFailureShowsUnavailable(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(sourceFailedMsg{})

	assert.True(t, m.progress.Failed)
	assert.Equal(t, "Country list unavailable", m.statusMessage)

	press(m, tea.KeyTab)
	assert.Contains(t, m.View(), "country list unavailable")
}

func TestTypeNavigateAndCommit(t *testing.T) {
	m, store := loaded(t)

	typeText(m, "ger")
	snap := m.engine.Snapshot()
	assert.Equal(t, "ger", snap.Query)
	assert.True(t, snap.Open)
	require.Len(t, snap.Suggestions, 1)

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	snap = m.engine.Snapshot()
	require.NotNil(t, snap.Committed)
	assert.Equal(t, "DE", snap.Committed.ShortCode)
	assert.False(t, snap.Open)
	assert.Empty(t, m.inputHandler.TextInput().Value())

	code, ok := storedCode(t, store)
	assert.True(t, ok)
	assert.Equal(t, "DE", code)
}

func TestResetQueryClearsInput(t *testing.T) {
	m, _ := loaded(t)

	typeText(m, "fr")
	press(m, tea.KeyLeft)

	assert.Empty(t, m.engine.Snapshot().Query)
	assert.Empty(t, m.inputHandler.TextInput().Value())
	assert.True(t, m.engine.Snapshot().Open)
}

func TestEscapeCancels(t *testing.T) {
	m, _ := loaded(t)

	typeText(m, "sp")
	press(m, tea.KeyDown)
	require.NotNil(t, m.engine.Snapshot().TempSelection)

	press(m, tea.KeyEsc)
	snap := m.engine.Snapshot()
	assert.False(t, snap.Open)
	assert.Nil(t, snap.TempSelection)
	assert.Empty(t, snap.Query)
	assert.Empty(t, m.inputHandler.TextInput().Value())
}

func TestClickRowCommits(t *testing.T) {
	m, store := loaded(t)

	press(m, tea.KeyTab)
	m.View()
	require.Greater(t, m.layout.PanelRows, 0)

	// second row of the sorted list
	click(m, 4, m.layout.PanelTop+1)

	snap := m.engine.Snapshot()
	require.NotNil(t, snap.Committed)
	assert.Equal(t, "Germany", snap.Committed.DisplayName)
	assert.False(t, snap.Open)

	code, _ := storedCode(t, store)
	assert.Equal(t, "DE", code)
}

func TestClickLabelTogglesAndOutsideCloses(t *testing.T) {
	m, _ := loaded(t)
	m.View()

	click(m, 0, m.layout.LabelRow)
	assert.True(t, m.engine.Snapshot().Open)

	m.View()
	click(m, 0, m.layout.WidgetBottom+5)
	assert.False(t, m.engine.Snapshot().Open)
}

func TestClickClearRemovesSelection(t *testing.T) {
	m, store := loaded(t)

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	require.NotNil(t, m.engine.Snapshot().Committed)

	m.View()
	require.GreaterOrEqual(t, m.layout.ClearStart, 0)
	click(m, m.layout.ClearStart, m.layout.LabelRow)

	assert.Nil(t, m.engine.Snapshot().Committed)
	_, ok := storedCode(t, store)
	assert.False(t, ok)
}

func TestWheelNavigatesOpenPanel(t *testing.T) {
	m, _ := loaded(t)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	assert.Equal(t, -1, m.engine.Snapshot().HighlightIndex)

	press(m, tea.KeyTab)
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 0, m.engine.Snapshot().HighlightIndex)
}

func TestDomainEventsSetStatus(t *testing.T) {
	m, _ := loaded(t)

	cmd := m.handleEvent(eventbus.StorageFailedEvent{Op: "set", Key: "k", Err: errors.New("disk full")})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Selection could not be saved", m.statusMessage)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.statusMessage)

	m.Update(EventMsg{Event: eventbus.SelectionRestoredEvent{Item: testItems()[2]}})
	assert.Equal(t, "Restored FR: France", m.statusMessage)
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := loaded(t)

	press(m, tea.KeyF1)
	assert.True(t, m.showHelp)

	cmd := m.processAction(inputtypes.QuitAction{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewportFollowsTerminalHeight(t *testing.T) {
	m, _ := loaded(t)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 14})
	assert.Equal(t, 4, m.engine.Navigation.ViewportHeight())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 100})
	assert.Equal(t, m.config.UI.MaxVisible, m.engine.Navigation.ViewportHeight())
}

func TestPagerNeedsProgram(t *testing.T) {
	m, _ := loaded(t)
	assert.Nil(t, m.processAction(inputtypes.OpenPagerAction{}))
}

func TestRenderItemListingMarksCommitted(t *testing.T) {
	items := testItems()
	out := RenderItemListing(items, &items[1], false)

	assert.Contains(t, out, "Spain")
	assert.Contains(t, out, "✓ ")
	assert.Contains(t, out, "DEU")
}

func TestHoverHighlightsRow(t *testing.T) {
	m, _ := loaded(t)

	press(m, tea.KeyTab)
	m.View()
	require.Greater(t, m.layout.PanelRows, 2)

	m.Update(tea.MouseMsg{X: 4, Y: m.layout.PanelTop + 2, Action: tea.MouseActionMotion})
	snap := m.engine.Snapshot()
	assert.Equal(t, 2, snap.HighlightIndex)
	assert.Nil(t, snap.Committed, "hover never commits")
}
