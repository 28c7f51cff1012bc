package eventbus

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countrypick/internal/domain"
	"countrypick/internal/logging"
)

func collect(t *testing.T, b EventBus, eventType EventType) (func() []DomainEvent, func()) {
	t.Helper()
	var mu sync.Mutex
	var got []DomainEvent
	unsub := b.Subscribe(eventType, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	})
	return func() []DomainEvent {
		mu.Lock()
		defer mu.Unlock()
		return append([]DomainEvent(nil), got...)
	}, unsub
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New(logging.Discard())
	events, _ := collect(t, b, EventSelectionCommitted)

	b.Publish(SelectionCommittedEvent{Item: domain.Item{ShortCode: "FR"}})
	b.Publish(SelectionCommittedEvent{Item: domain.Item{ShortCode: "DE"}})
	b.Publish(SelectionClearedEvent{})
	b.Close()

	got := events()
	require.Len(t, got, 2)
	assert.Equal(t, "FR", got[0].(SelectionCommittedEvent).Item.ShortCode)
	assert.Equal(t, "DE", got[1].(SelectionCommittedEvent).Item.ShortCode)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(logging.Discard())
	events, unsub := collect(t, b, EventStorageFailed)

	b.Publish(StorageFailedEvent{Op: "set", Key: "k", Err: errors.New("quota")})
	require.Eventually(t, func() bool { return len(events()) == 1 }, time.Second, 5*time.Millisecond)

	unsub()
	b.Publish(StorageFailedEvent{Op: "set", Key: "k", Err: errors.New("quota")})
	b.Close()

	assert.Len(t, events(), 1)
}

func TestPanickingHandlerDoesNotStopDispatcher(t *testing.T) {
	b := New(logging.Discard())
	b.Subscribe(EventSourceFailed, func(DomainEvent) { panic("boom") })
	events, _ := collect(t, b, EventSourceFailed)

	b.Publish(SourceFailedEvent{Source: "http", Err: errors.New("offline")})
	b.Publish(SourceFailedEvent{Source: "http", Err: errors.New("offline")})
	b.Close()

	assert.Len(t, events(), 2)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(logging.Discard())
	events, _ := collect(t, b, EventItemsLoaded)
	b.Close()

	b.Publish(ItemsLoadedEvent{Source: "embedded"})
	b.Close()

	assert.Empty(t, events())
}
