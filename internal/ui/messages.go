package ui

import (
	"countrypick/internal/domain"
	"countrypick/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// itemsLoadedMsg carries the list once the source resolves
type itemsLoadedMsg struct {
	items []domain.Item
}

// sourceFailedMsg means the source channel closed without a list
type sourceFailedMsg struct{}

// pagerClosedMsg is sent when the pager returns control
type pagerClosedMsg struct {
	err error
}

// pauseRenderingMsg stops rendering while an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg restarts rendering after the pager exits
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
