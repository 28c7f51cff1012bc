// Package storage persists the committed selection behind a narrow
// get/set/remove key-value contract.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"countrypick/internal/config"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("storage is closed")

// Store is a string key-value store. A missing key is not an error:
// Get reports it through the boolean.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open builds the backend named in the configuration
func Open(ctx context.Context, cfg config.StorageConfig, logger *log.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return NewSQLiteStore(ctx, cfg.Path, logger)
	case config.BackendFile:
		return NewFileStore(cfg.Path), nil
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}
