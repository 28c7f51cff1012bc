package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"countrypick/internal/domain"
)

// RenderItemListing renders the list one item per line for the pager and for
// plain output. The committed item, if any, is marked.
func RenderItemListing(items []domain.Item, committed *domain.Item, showIcons bool) string {
	codeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("78"))

	var b strings.Builder
	for _, item := range items {
		mark := "  "
		if committed != nil && committed.SameAs(item) {
			mark = markStyle.Render("✓ ")
		}
		icon := ""
		if showIcons && item.IconRef != "" {
			icon = item.IconRef + " "
		}
		fmt.Fprintf(&b, "%s%s  %s  %s%s\n",
			mark, codeStyle.Render(item.ShortCode), item.AltCode, icon, item.DisplayName)
	}
	return b.String()
}

// Pager shows long content in ov
type Pager struct {
	program *tea.Program // nil when running outside the TUI
}

// NewPager creates a pager. With a program it hands the terminal over and
// takes it back afterwards.
func NewPager(program *tea.Program) *Pager {
	return &Pager{program: program}
}

// Show runs ov on content until the user quits it
func (p *Pager) Show(content io.Reader) error {
	if p.program != nil {
		// Release terminal control to run ov
		if err := p.program.ReleaseTerminal(); err != nil {
			return err
		}
		defer func() {
			// Small delay to ensure ov has fully exited before restoring terminal
			time.Sleep(100 * time.Millisecond)
			_ = p.program.RestoreTerminal()
		}()
	}

	root, err := oviewer.NewRoot(content)
	if err != nil {
		return err
	}

	// Don't write the document back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
