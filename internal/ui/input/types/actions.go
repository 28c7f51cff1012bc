package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

// ConfirmAction commits the highlighted entry
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

// ResetQueryAction clears the query text but keeps the highlight
type ResetQueryAction struct {
	Direction string // "left" or "right"
}

func (a ResetQueryAction) Type() string { return "reset_query" }

// CancelAction dismisses the panel as if the user clicked outside
type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

type TogglePanelAction struct{}

func (a TogglePanelAction) Type() string { return "toggle_panel" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// OpenPagerAction shows the whole list in the pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
