package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"countrypick/internal/config"
	"countrypick/internal/eventbus"
	"countrypick/internal/logging"
	"countrypick/internal/logic"
	"countrypick/internal/source"
	"countrypick/internal/storage"
	"countrypick/internal/ui/coordinator"
	"countrypick/internal/ui/services/events"
	"countrypick/internal/ui/services/selection"
)

// App holds the dependencies of one command run.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Bus    eventbus.EventBus
	Store  *storage.AsyncWriter
	Source source.Source
	UIBus  *events.Bus
	Engine *coordinator.Engine

	logCloser io.Closer
}

// NewApp loads the configuration and builds the engine. logOut receives log
// output; nil sends it to the configured log file.
func NewApp(ctx context.Context, opts *Options, logOut io.Writer) (*App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logCfg := logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, File: cfg.Logging.File}
	var logger *log.Logger
	logCloser := io.Closer(io.NopCloser(nil))
	if logOut != nil {
		logger = logging.New(logOut, "", logCfg)
	} else {
		if logCfg.File == "" {
			logCfg.File = filepath.Join(config.StateDir(), "countrypick.log")
		}
		logger, logCloser, err = logging.Open(logCfg)
		if err != nil {
			return nil, err
		}
	}

	src, err := source.New(cfg.Source)
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	bus := eventbus.New(logger)

	store, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		bus.Close()
		_ = logCloser.Close()
		return nil, fmt.Errorf("open selection storage: %w", err)
	}
	writer := storage.NewAsyncWriter(store, bus, logger)

	uiBus := events.NewBus()
	sel := selection.NewService(writer, cfg.Storage.Key, bus, logger)
	engine := coordinator.NewEngine(uiBus, logic.NewMemoryItemStore(), sel, cfg.UI.Locale, logger)

	logger.Debug("app initialized",
		"source", src.Name(), "storage", cfg.Storage.Backend, "locale", cfg.UI.Locale)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Bus:       bus,
		Store:     writer,
		Source:    src,
		UIBus:     uiBus,
		Engine:    engine,
		logCloser: logCloser,
	}, nil
}

// LoadItems fetches the list synchronously and hands it to the engine
func (a *App) LoadItems(ctx context.Context) (coordinator.Snapshot, error) {
	items, err := a.Source.Load(ctx)
	if err != nil {
		a.Bus.Publish(eventbus.SourceFailedEvent{Source: a.Source.Name(), Err: err})
		return coordinator.Snapshot{}, fmt.Errorf("load countries from %s source: %w", a.Source.Name(), err)
	}
	a.Bus.Publish(eventbus.ItemsLoadedEvent{Items: items, Source: a.Source.Name()})
	return a.Engine.Dispatch(ctx, coordinator.ItemsAvailable{Items: items}), nil
}

// Close drains pending writes, then stops the bus and the log file
func (a *App) Close() error {
	var errs []error
	if err := a.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	a.Bus.Close()
	if err := a.logCloser.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *Options) (*config.Config, error) {
	svc := config.NewConfigServiceForPath(opts.ConfigPath)

	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = svc.LoadFromPath(opts.ConfigPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.Source != "" {
		cfg.Source.Kind = opts.Source
	}
	if opts.Storage != "" && opts.Storage != cfg.Storage.Backend {
		// The configured path belongs to the other backend
		cfg.Storage.Backend = opts.Storage
		cfg.Storage.Path = ""
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	if err := config.Finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
