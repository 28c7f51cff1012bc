package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"countrypick/internal/eventbus"
	"countrypick/internal/logging"
)

const (
	writeTimeout = 5 * time.Second
	queueSize    = 64
)

// ErrQueueFull is reported when a write is dropped because the writer is
// still behind on earlier ones
var ErrQueueFull = errors.New("storage write queue full")

type opKind int

const (
	opSet opKind = iota
	opRemove
	opFlush
)

type writeOp struct {
	kind  opKind
	key   string
	value string
	done  chan struct{}
}

// AsyncWriter wraps a Store so writes never block the caller. Writes are
// applied in order by one goroutine; failures are logged and published as
// StorageFailedEvent and never returned.
type AsyncWriter struct {
	store  Store
	bus    eventbus.EventBus
	logger *log.Logger

	mu     sync.RWMutex
	closed bool
	ops    chan writeOp
	wg     sync.WaitGroup
}

// NewAsyncWriter starts the writer goroutine. bus may be nil.
func NewAsyncWriter(store Store, bus eventbus.EventBus, logger *log.Logger) *AsyncWriter {
	w := &AsyncWriter{
		store:  store,
		bus:    bus,
		logger: logging.Component(logger, "storage"),
		ops:    make(chan writeOp, queueSize),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// Get waits for queued writes to land, then reads through
func (w *AsyncWriter) Get(ctx context.Context, key string) (string, bool, error) {
	if err := w.Flush(ctx); err != nil {
		return "", false, err
	}
	return w.store.Get(ctx, key)
}

// Set queues a write and returns immediately
func (w *AsyncWriter) Set(_ context.Context, key, value string) error {
	return w.enqueue(writeOp{kind: opSet, key: key, value: value})
}

// Remove queues a delete and returns immediately
func (w *AsyncWriter) Remove(_ context.Context, key string) error {
	return w.enqueue(writeOp{kind: opRemove, key: key})
}

// Flush blocks until every write queued before it has been applied, or ctx
// is done
func (w *AsyncWriter) Flush(ctx context.Context) error {
	done := make(chan struct{})

	w.mu.RLock()
	if w.closed {
		w.mu.RUnlock()
		return ErrClosed
	}
	select {
	case w.ops <- writeOp{kind: opFlush, done: done}:
		w.mu.RUnlock()
	case <-ctx.Done():
		w.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains pending writes and closes the underlying store
func (w *AsyncWriter) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.ops)
	w.mu.Unlock()

	w.wg.Wait()
	return w.store.Close()
}

func (op writeOp) name() string {
	if op.kind == opRemove {
		return "remove"
	}
	return "set"
}

func (w *AsyncWriter) failed(name, key string, err error) {
	w.logger.Warn("storage write failed", "op", name, "key", key, "err", err)
	if w.bus != nil {
		w.bus.Publish(eventbus.StorageFailedEvent{Op: name, Key: key, Err: err})
	}
}

// enqueue queues a write without blocking; a full queue drops it
func (w *AsyncWriter) enqueue(op writeOp) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return ErrClosed
	}
	select {
	case w.ops <- op:
	default:
		// Never stall the caller behind a slow store
		w.failed(op.name(), op.key, ErrQueueFull)
	}
	return nil
}

func (w *AsyncWriter) run() {
	defer w.wg.Done()

	for op := range w.ops {
		switch op.kind {
		case opFlush:
			close(op.done)
		case opSet:
			w.apply(op.name(), op.key, func(ctx context.Context) error {
				return w.store.Set(ctx, op.key, op.value)
			})
		case opRemove:
			w.apply(op.name(), op.key, func(ctx context.Context) error {
				return w.store.Remove(ctx, op.key)
			})
		}
	}
}

func (w *AsyncWriter) apply(name, key string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		w.failed(name, key, err)
		return
	}
	w.logger.Debug("storage write applied", "op", name, "key", key)
}
