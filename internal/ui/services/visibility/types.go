package visibility

// State holds panel visibility
type State struct {
	Open bool
}

// Event types
type PanelToggledEvent struct {
	Open   bool
	Reason string
}
