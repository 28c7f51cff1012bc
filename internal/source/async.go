package source

import (
	"context"

	"github.com/charmbracelet/log"

	"countrypick/internal/domain"
	"countrypick/internal/eventbus"
	"countrypick/internal/logging"
)

// Loader runs a source in the background and reports the outcome on the bus
type Loader struct {
	src    Source
	bus    eventbus.EventBus
	logger *log.Logger
}

// NewLoader creates a loader. bus may be nil.
func NewLoader(src Source, bus eventbus.EventBus, logger *log.Logger) *Loader {
	return &Loader{
		src:    src,
		bus:    bus,
		logger: logging.Component(logger, "source"),
	}
}

// LoadAsync starts loading and returns a channel that receives at most one
// list and is then closed. A channel closed without a value means the source
// failed; the failure is logged and published, never returned.
func (l *Loader) LoadAsync(ctx context.Context) <-chan []domain.Item {
	ch := make(chan []domain.Item, 1)

	go func() {
		defer close(ch)

		l.logger.Debug("loading items", "source", l.src.Name())
		items, err := l.src.Load(ctx)
		if err != nil {
			l.logger.Warn("item source failed", "source", l.src.Name(), "err", err)
			l.publish(eventbus.SourceFailedEvent{Source: l.src.Name(), Err: err})
			return
		}

		l.logger.Info("items loaded", "source", l.src.Name(), "count", len(items))
		l.publish(eventbus.ItemsLoadedEvent{Items: items, Source: l.src.Name()})
		ch <- items
	}()

	return ch
}

func (l *Loader) publish(event eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(event)
	}
}
