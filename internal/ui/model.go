package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"countrypick/internal/config"
	"countrypick/internal/domain"
	"countrypick/internal/eventbus"
	"countrypick/internal/logging"
	"countrypick/internal/logic"
	"countrypick/internal/ui/coordinator"
	"countrypick/internal/ui/input"
	inputtypes "countrypick/internal/ui/input/types"
	"countrypick/internal/ui/services/events"
	"countrypick/internal/ui/services/navigation"
	"countrypick/internal/ui/services/sorting"
	"countrypick/internal/ui/views"
)

// Lines the widget needs around the panel rows: title, label, input, the
// no-matches header, the scroll footer, status and help.
const chromeLines = 10

// statusTimeout is how long transient status messages stay up
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	ctx    context.Context
	engine *coordinator.Engine
	config *config.Config
	logger *log.Logger

	// UI-specific state not held by the engine
	width         int
	height        int
	help          help.Model
	showHelp      bool
	progress      domain.LoadProgress
	statusMessage string
	statusKind    views.StatusKind
	layout        views.Layout
	inPagerMode   bool

	itemsCh      <-chan []domain.Item
	renderer     *views.Renderer
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the selector model. items delivers the list once; a
// closed channel without a value means the source gave up. ctx is the
// session context handed to every engine dispatch.
func NewModel(ctx context.Context, engine *coordinator.Engine, cfg *config.Config, items <-chan []domain.Item, bus events.EventBus, logger *log.Logger) *Model {
	m := &Model{
		ctx:          ctx,
		engine:       engine,
		config:       cfg,
		logger:       logging.Component(logger, "ui"),
		help:         help.New(),
		progress:     domain.LoadProgress{IsLoading: items != nil},
		itemsCh:      items,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(cfg.UI.Placeholder),
	}

	if engine.Items().Loaded() {
		m.progress = domain.LoadProgress{Loaded: true, Count: engine.Items().Len()}
	}

	// Subscribe to engine events
	bus.Subscribe(events.TypeOf(logic.ItemsLoadedEvent{}), func(ev interface{}) {
		loaded := ev.(logic.ItemsLoadedEvent)
		m.progress = domain.LoadProgress{Loaded: true, Count: loaded.Count}
	})
	bus.Subscribe(events.TypeOf(sorting.ListPreparedEvent{}), func(ev interface{}) {
		if dropped := len(ev.(sorting.ListPreparedEvent).Dropped); dropped > 0 {
			m.setStatus(fmt.Sprintf("Skipped %d invalid entries", dropped), views.StatusWarning)
		}
	})
	bus.Subscribe(events.TypeOf(navigation.HighlightChangedEvent{}), func(interface{}) {
		if m.statusKind != views.StatusLoading {
			m.statusMessage = ""
		}
	})

	m.updateViewportHeight()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init starts the cursor blink and waits for the item list
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputHandler.Init(), waitForItems(m.itemsCh))
}

// waitForItems turns the source channel into a message
func waitForItems(ch <-chan []domain.Item) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		items, ok := <-ch
		if !ok {
			return sourceFailedMsg{}
		}
		return itemsLoadedMsg{items: items}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	view, layout := m.renderer.Render(m.viewState())
	m.layout = layout
	return view
}

func (m *Model) viewState() views.ViewState {
	return views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Snapshot:      m.engine.Snapshot(),
		Input:         m.inputHandler.TextInput().View(),
		Progress:      m.progress,
		StatusMessage: m.statusMessage,
		StatusKind:    m.statusKind,
		ShowIcons:     m.config.UI.ShowIcons,
		ShowHelp:      m.showHelp,
		HelpModel:     m.help,
		KeyMap:        m.inputHandler.KeyMap(),
	}
}

// dispatch forwards an event to the engine and keeps the input in step
func (m *Model) dispatch(ev coordinator.Event) coordinator.Snapshot {
	snap := m.engine.Dispatch(m.ctx, ev)
	m.inputHandler.SyncQuery(snap.Query)
	return snap
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.dispatch(coordinator.QueryChanged{Text: a.Text})

	case inputtypes.NavigateAction:
		m.dispatch(coordinator.KeyPressed{Key: coordinator.Key(a.Direction)})

	case inputtypes.ConfirmAction:
		m.dispatch(coordinator.KeyPressed{Key: coordinator.KeyEnter})

	case inputtypes.ResetQueryAction:
		m.dispatch(coordinator.KeyPressed{Key: coordinator.Key(a.Direction)})

	case inputtypes.CancelAction:
		m.dispatch(coordinator.OutsideInteraction{})

	case inputtypes.TogglePanelAction:
		m.dispatch(coordinator.ToggleVisibility{})

	case inputtypes.ClearSelectionAction:
		m.dispatch(coordinator.ClearRequested{})

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp
		m.updateViewportHeight()

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		m.logger.Debug("unhandled action", "type", action.Type())
	}
	return nil
}

// handleMouse maps a click onto the widget regions from the last render
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.engine.Visibility.IsOpen() {
			m.dispatch(coordinator.KeyPressed{Key: coordinator.KeyUp})
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.engine.Visibility.IsOpen() {
			m.dispatch(coordinator.KeyPressed{Key: coordinator.KeyDown})
		}
		return nil
	}

	if msg.Action == tea.MouseActionMotion {
		if hit := m.layout.HitTest(msg.X, msg.Y); hit.Kind == views.HitRow {
			m.dispatch(coordinator.RowHovered{Index: hit.Index})
		}
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	hit := m.layout.HitTest(msg.X, msg.Y)
	switch hit.Kind {
	case views.HitLabel:
		m.dispatch(coordinator.ToggleVisibility{})
	case views.HitClear:
		m.dispatch(coordinator.ClearRequested{})
	case views.HitInput:
		if !m.engine.Visibility.IsOpen() {
			m.dispatch(coordinator.ToggleVisibility{})
		}
	case views.HitRow:
		snap := m.engine.Snapshot()
		if hit.Index >= 0 && hit.Index < len(snap.ActiveList) {
			m.dispatch(coordinator.ItemClicked{Item: snap.ActiveList[hit.Index]})
		}
	case views.HitPanel:
		// no-matches header or scroll footer
	case views.HitOutside:
		m.dispatch(coordinator.OutsideInteraction{})
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		m.dispatch(coordinator.ItemsAvailable{Items: msg.items})
		if !m.engine.Items().Loaded() {
			m.progress = domain.LoadProgress{Failed: true}
		}
		return m, nil

	case sourceFailedMsg:
		m.progress = domain.LoadProgress{Failed: true}
		return m, m.setStatus("Country list unavailable", views.StatusWarning)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", "err", msg.err)
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), views.StatusError)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// handleEvent surfaces domain events that happen off the UI goroutine
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.StorageFailedEvent:
		return m.setStatus("Selection could not be saved", views.StatusWarning)
	case eventbus.SelectionRestoredEvent:
		return m.setStatus("Restored "+e.Item.Label(), views.StatusSuccess)
	case eventbus.SourceFailedEvent:
		m.logger.Debug("source failed", "source", e.Source, "err", e.Err)
	}
	return nil
}

// setStatus shows a message and schedules it to clear
func (m *Model) setStatus(message string, kind views.StatusKind) tea.Cmd {
	m.statusMessage = message
	m.statusKind = kind
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// updateViewportHeight fits the panel to the terminal, capped by the config
func (m *Model) updateViewportHeight() {
	height := m.config.UI.MaxVisible
	if m.height > 0 {
		chrome := chromeLines
		if m.showHelp {
			chrome += len(m.inputHandler.KeyMap().FullHelp())
		}
		height = min(height, max(m.height-chrome, 1))
	}
	m.engine.SetViewportHeight(height)
}

// openPager shows the whole list in ov
func (m *Model) openPager() tea.Cmd {
	if m.program == nil {
		return nil
	}
	if !m.engine.Items().Loaded() {
		return m.setStatus("Country list not loaded yet", views.StatusInfo)
	}

	snap := m.engine.Snapshot()
	content := RenderItemListing(m.engine.Items().Items(), snap.Committed, m.config.UI.ShowIcons)
	pager := NewPager(m.program)

	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := pager.Show(strings.NewReader(content))

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerClosedMsg{err: err}
	}
}
