package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	TempSelection lipgloss.Style
	Committed     lipgloss.Style
	Clear         lipgloss.Style
	Row           lipgloss.Style
	Highlight     lipgloss.Style
	Current       lipgloss.Style
	NoMatch       lipgloss.Style
	Scroll        lipgloss.Style
	Help          lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:           lipgloss.NewStyle().Faint(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TempSelection: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Committed:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Clear:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Row:           lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Current:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		NoMatch:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:          lipgloss.NewStyle().Faint(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
