package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"countrypick/internal/domain"
	"countrypick/internal/ui/coordinator"
)

// StatusKind picks the status line color
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusWarning
	StatusError
)

const clearLabel = "[clear]"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Snapshot      coordinator.Snapshot
	Input         string // rendered text input
	Progress      domain.LoadProgress
	StatusMessage string
	StatusKind    StatusKind
	ShowIcons     bool
	ShowHelp      bool
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view and where the widget ended up
func (r *Renderer) Render(state ViewState) (string, Layout) {
	var lines []string
	layout := Layout{ClearStart: -1}

	lines = append(lines, strings.Split(r.renderTitle(state), "\n")...)

	layout.LabelRow = len(lines)
	label, clearStart := r.renderLabel(state)
	if clearStart >= 0 {
		layout.ClearStart = clearStart
		layout.ClearEnd = clearStart + lipgloss.Width(clearLabel)
	}
	lines = append(lines, label)

	layout.InputRow = len(lines)
	lines = append(lines, state.Input)
	layout.WidgetBottom = layout.InputRow

	snap := state.Snapshot
	if snap.Open {
		header, rows, footer, first := r.renderPanel(state)
		lines = append(lines, header...)
		layout.PanelTop = len(lines)
		layout.PanelRows = len(rows)
		layout.FirstIndex = first
		lines = append(lines, rows...)
		lines = append(lines, footer...)
		layout.WidgetBottom = len(lines) - 1
	}

	if status := r.renderStatus(state); status != "" {
		lines = append(lines, "", status)
	}

	lines = append(lines, "", r.renderHelp(state))

	return strings.Join(lines, "\n"), layout
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("countrypick")
	var right string
	switch {
	case state.Progress.IsLoading:
		right = r.styles.StatusLoading.Render("loading…")
	case state.Progress.Loaded:
		right = r.styles.Dim.Render(fmt.Sprintf("%d countries", state.Progress.Count))
	}
	if right == "" {
		return logo
	}

	// logo carries a bottom margin; put the indicator on its first line
	logoLines := strings.Split(logo, "\n")
	gap := max(state.Width-lipgloss.Width(logoLines[0])-lipgloss.Width(right), 2)
	logoLines[0] = logoLines[0] + strings.Repeat(" ", gap) + right
	return strings.Join(logoLines, "\n")
}

// renderLabel returns the selection line and the column of the clear
// affordance, or -1
func (r *Renderer) renderLabel(state ViewState) (string, int) {
	snap := state.Snapshot
	switch {
	case snap.TempSelection != nil:
		return r.styles.TempSelection.Render("▸ " + r.itemText(*snap.TempSelection, state.ShowIcons)), -1
	case snap.Committed != nil && snap.CommittedVisible:
		prefix := r.styles.Committed.Render("✓ "+r.itemText(*snap.Committed, state.ShowIcons)) + "  "
		return prefix + r.styles.Clear.Render(clearLabel), lipgloss.Width(prefix)
	default:
		return r.styles.Dim.Render("No country selected"), -1
	}
}

func (r *Renderer) renderPanel(state ViewState) (header, rows, footer []string, first int) {
	snap := state.Snapshot

	if !snap.Loaded {
		if state.Progress.Failed {
			return []string{r.styles.Dim.Render("  country list unavailable")}, nil, nil, 0
		}
		return []string{r.styles.StatusLoading.Render("  loading countries…")}, nil, nil, 0
	}

	if snap.NoMatches() {
		header = append(header, r.styles.NoMatch.Render(fmt.Sprintf("  no matches for %q", snap.Query)))
	}

	visible, start := snap.Visible()
	for i, item := range visible {
		rows = append(rows, r.renderRow(state, item, start+i))
	}

	if total := len(snap.ActiveList); total > len(visible) {
		footer = append(footer, r.styles.Scroll.Render(
			fmt.Sprintf("  %d–%d of %d", start+1, start+len(visible), total)))
	}
	return header, rows, footer, start
}

func (r *Renderer) renderRow(state ViewState, item domain.Item, index int) string {
	snap := state.Snapshot
	marker := "  "
	if snap.IsCommitted(item) {
		marker = r.styles.Current.Render("✓ ")
	}

	text := item.DisplayName
	if state.ShowIcons && item.IconRef != "" {
		text = item.IconRef + " " + text
	}

	if index == snap.HighlightIndex {
		return marker + r.styles.Highlight.Render(text)
	}
	return marker + r.styles.Row.Render(text)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	switch state.StatusKind {
	case StatusError:
		return r.styles.StatusError.Render(state.StatusMessage)
	case StatusWarning:
		return r.styles.StatusWarning.Render(state.StatusMessage)
	case StatusLoading:
		return r.styles.StatusLoading.Render(state.StatusMessage)
	case StatusSuccess:
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	default:
		return r.styles.Dim.Render(state.StatusMessage)
	}
}

func (r *Renderer) renderHelp(state ViewState) string {
	if state.KeyMap == nil {
		return ""
	}
	h := state.HelpModel
	h.ShowAll = state.ShowHelp
	if state.Width > 0 {
		h.Width = state.Width
	}
	return h.View(state.KeyMap)
}

func (r *Renderer) itemText(item domain.Item, showIcons bool) string {
	if showIcons && item.IconRef != "" {
		return item.IconRef + " " + item.Label()
	}
	return item.Label()
}
