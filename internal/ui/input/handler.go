package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countrypick/internal/ui/input/types"
)

// Handler turns key presses into actions. The text input is always focused;
// keys that are not bound go to it.
type Handler struct {
	keys      KeyMap
	textInput *textinput.Model
}

func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()

	return &Handler{
		keys:      DefaultKeyMap(),
		textInput: &ti,
	}
}

// HandleKey maps a key to actions. Unbound keys edit the query; an
// UpdateTextAction is emitted only when the text actually changed.
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}, nil
	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, nil
	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, nil
	case key.Matches(msg, h.keys.Confirm):
		return []types.Action{types.ConfirmAction{}}, nil
	case key.Matches(msg, h.keys.Reset):
		return []types.Action{types.ResetQueryAction{Direction: msg.String()}}, nil
	case key.Matches(msg, h.keys.Cancel):
		return []types.Action{types.CancelAction{}}, nil
	case key.Matches(msg, h.keys.Toggle):
		return []types.Action{types.TogglePanelAction{}}, nil
	case key.Matches(msg, h.keys.Clear):
		return []types.Action{types.ClearSelectionAction{}}, nil
	case key.Matches(msg, h.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, nil
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		return []types.Action{types.UpdateTextAction{Text: after}}, cmd
	}
	return nil, cmd
}

// SyncQuery makes the text input show query without emitting an action
func (h *Handler) SyncQuery(query string) {
	if h.textInput.Value() != query {
		h.textInput.SetValue(query)
		h.textInput.CursorEnd()
	}
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) KeyMap() KeyMap {
	return h.keys
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
