package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"countrypick/internal/eventbus"
	"countrypick/internal/source"
	"countrypick/internal/ui"
)

// runTUI starts the interactive selector
func runTUI(ctx context.Context, opts *Options) error {
	app, err := NewApp(ctx, opts, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger.Error("shutdown failed", "err", err)
		}
	}()

	loader := source.NewLoader(app.Source, app.Bus, app.Logger)
	items := loader.LoadAsync(ctx)

	model := ui.NewModel(ctx, app.Engine, app.Config, items, app.UIBus, app.Logger)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if app.Config.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			app.Logger.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSourceFailed,
		eventbus.EventStorageFailed,
		eventbus.EventSelectionRestored,
	} {
		unsubscribe := app.Bus.Subscribe(eventType, forward)
		defer unsubscribe()
	}

	// Start forwarding events to UI in background
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
