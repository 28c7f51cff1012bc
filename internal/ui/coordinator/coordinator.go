package coordinator

import (
	"context"
	"slices"

	"github.com/charmbracelet/log"

	"countrypick/internal/domain"
	"countrypick/internal/logging"
	"countrypick/internal/logic"
	"countrypick/internal/ui/services/events"
	"countrypick/internal/ui/services/navigation"
	"countrypick/internal/ui/services/search"
	"countrypick/internal/ui/services/selection"
	"countrypick/internal/ui/services/sorting"
	"countrypick/internal/ui/services/visibility"
)

// Engine owns every piece of selector state and applies events to it one at
// a time. It is not safe for concurrent use; callers serialize Dispatch.
type Engine struct {
	// Services
	Navigation *navigation.Service
	Search     *search.Service
	Selection  *selection.Service
	Sorting    *sorting.Service
	Visibility *visibility.Service

	// Dependencies
	bus    events.EventBus
	items  logic.ItemStore
	logger *log.Logger

	temp *domain.Item
}

// NewEngine wires the services around an item store and a selection service
func NewEngine(bus events.EventBus, items logic.ItemStore, sel *selection.Service, locale string, logger *log.Logger) *Engine {
	e := &Engine{
		Navigation: navigation.NewService(bus),
		Search:     search.NewService(bus),
		Selection:  sel,
		Sorting:    sorting.NewService(bus, locale),
		Visibility: visibility.NewService(bus),
		bus:        bus,
		items:      items,
		logger:     logging.Component(logger, "engine"),
	}

	// Wire up service dependencies
	e.Navigation.SetListLengthFunction(func() int {
		return len(e.activeList())
	})

	// Subscribe to events
	bus.Subscribe(events.TypeOf(sorting.ListPreparedEvent{}), func(ev interface{}) {
		prepared := ev.(sorting.ListPreparedEvent)
		for _, item := range prepared.Dropped {
			e.logger.Warn("dropping item", "name", item.DisplayName, "code", item.ShortCode)
		}
	})

	return e
}

// Items exposes the session's item list
func (e *Engine) Items() logic.ItemStore {
	return e.items
}

// SetViewportHeight sets how many rows the panel shows
func (e *Engine) SetViewportHeight(height int) {
	e.Navigation.SetViewportHeight(height)
}

// Dispatch applies one event and returns the resulting state. ctx bounds
// the storage calls the event triggers.
func (e *Engine) Dispatch(ctx context.Context, ev Event) Snapshot {
	switch ev := ev.(type) {
	case QueryChanged:
		e.changeQuery(ev.Text)
	case KeyPressed:
		e.handleKey(ctx, ev.Key)
	case ItemClicked:
		e.commit(ctx, ev.Item)
	case RowHovered:
		e.hover(ev.Index)
	case OutsideInteraction:
		e.cancel()
	case ToggleVisibility:
		e.Visibility.Toggle()
	case ItemsAvailable:
		e.loadItems(ctx, ev.Items)
	case ClearRequested:
		e.clear(ctx)
	default:
		e.logger.Debug("ignoring unknown event", "event", events.TypeOf(ev))
	}
	return e.Snapshot()
}

// Snapshot returns the current state without changing it
func (e *Engine) Snapshot() Snapshot {
	active := e.activeList()
	kind := ListItems
	if len(e.Search.Suggestions()) > 0 {
		kind = ListSuggestions
	}

	snap := Snapshot{
		ActiveList:       slices.Clone(active),
		ActiveKind:       kind,
		Suggestions:      slices.Clone(e.Search.Suggestions()),
		HighlightIndex:   e.Navigation.Highlight(),
		Query:            e.Search.Query(),
		Open:             e.Visibility.IsOpen(),
		Loaded:           e.items.Loaded(),
		CommittedVisible: e.Selection.CommittedVisible(),
		ViewportOffset:   e.Navigation.ViewportOffset(),
		ViewportHeight:   e.Navigation.ViewportHeight(),
	}
	if e.temp != nil {
		temp := *e.temp
		snap.TempSelection = &temp
	}
	if item, ok := e.Selection.Committed(); ok {
		snap.Committed = &item
	}
	return snap
}

// activeList is the suggestion list when it has entries, else the full list
func (e *Engine) activeList() []domain.Item {
	if suggestions := e.Search.Suggestions(); len(suggestions) > 0 {
		return suggestions
	}
	return e.items.Items()
}

func (e *Engine) changeQuery(text string) {
	e.Search.SetQuery(text)
	e.Selection.SetTyping(text != "")
	e.Visibility.Open("typing")
	e.temp = nil
	e.Navigation.Reset()
}

func (e *Engine) handleKey(ctx context.Context, key Key) {
	switch key {
	case KeyUp:
		e.navigate(navigation.DirectionUp)
	case KeyDown:
		e.navigate(navigation.DirectionDown)
	case KeyEnter:
		e.confirm(ctx)
	case KeyLeft, KeyRight:
		e.resetQuery()
	}
}

func (e *Engine) navigate(dir navigation.Direction) {
	e.Navigation.Navigate(dir)
	e.temp = nil

	index := e.Navigation.Highlight()
	if index == navigation.Idle {
		return
	}
	// Arrow keys count as focusing the widget
	e.Visibility.Open("navigate")
	item := e.activeList()[index]
	e.temp = &item
}

// hover behaves like arrow navigation but jumps straight to index
func (e *Engine) hover(index int) {
	active := e.activeList()
	if !e.Visibility.IsOpen() || index < 0 || index >= len(active) {
		return
	}
	if index == e.Navigation.Highlight() {
		return
	}
	e.Navigation.MoveToIndex(index)
	item := active[e.Navigation.Highlight()]
	e.temp = &item
}

func (e *Engine) confirm(ctx context.Context) {
	index := e.Navigation.Highlight()
	active := e.activeList()
	if index < 0 || index >= len(active) {
		return
	}
	e.commit(ctx, active[index])
}

// resetQuery clears the text but keeps the highlight (clamped) and the panel
func (e *Engine) resetQuery() {
	if e.Search.Query() == "" {
		return
	}
	e.Search.SetQuery("")
	e.Selection.SetTyping(false)
	e.temp = nil
	e.Navigation.Clamp()
}

func (e *Engine) commit(ctx context.Context, item domain.Item) {
	e.Selection.Commit(ctx, item)
	e.Search.SetQuery("")
	e.temp = nil
	e.Navigation.Reset()
	e.Visibility.Close("commit")
}

func (e *Engine) clear(ctx context.Context) {
	e.Selection.Clear(ctx)
	e.Search.SetQuery("")
	e.temp = nil
	e.Navigation.Reset()
	e.Visibility.Close("clear")
}

// cancel is a full dismissal: panel, preview, query and highlight all reset
func (e *Engine) cancel() {
	e.Visibility.Close("outside")
	e.Search.SetQuery("")
	e.Selection.SetTyping(false)
	e.temp = nil
	e.Navigation.Reset()
}

func (e *Engine) loadItems(ctx context.Context, raw []domain.Item) {
	if e.items.Loaded() {
		e.logger.Debug("item list already loaded, ignoring new list")
		return
	}

	prepared := e.Sorting.Prepare(raw)
	if err := e.items.SetItems(prepared); err != nil {
		e.logger.Warn("could not install item list", "err", err)
		return
	}
	e.Search.SetItems(prepared)
	e.Navigation.Clamp()
	e.Selection.Restore(ctx, e.items)

	e.bus.Publish(logic.ItemsLoadedEvent{Count: len(prepared)})
}
