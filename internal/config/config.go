package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const appName = "countrypick"

// Sentinel validation errors
var (
	ErrUnknownSource  = errors.New("unknown source kind")
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Source kinds
const (
	SourceHTTP     = "http"
	SourceFile     = "file"
	SourceEmbedded = "embedded"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// DefaultSourceURL is the restcountries endpoint, trimmed to the fields we read
const DefaultSourceURL = "https://restcountries.com/v3.1/all?fields=name,cca2,cca3,flag"

// DefaultSelectionKey is the storage key holding the last committed short code
const DefaultSelectionKey = "lastSelectedCountry"

// Config represents the application configuration
type Config struct {
	Version int             `mapstructure:"version" toml:"version"`
	Source  SourceConfig    `mapstructure:"source" toml:"source"`
	Storage StorageConfig   `mapstructure:"storage" toml:"storage"`
	UI      UISettings      `mapstructure:"ui" toml:"ui"`
	Logging LoggingSettings `mapstructure:"logging" toml:"logging"`
}

// SourceConfig describes where the item list comes from
type SourceConfig struct {
	Kind       string        `mapstructure:"kind" toml:"kind"`
	URL        string        `mapstructure:"url" toml:"url"`
	Path       string        `mapstructure:"path" toml:"path"`
	Timeout    time.Duration `mapstructure:"timeout" toml:"timeout"`
	Retries    int           `mapstructure:"retries" toml:"retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay" toml:"retry_delay"`
}

// StorageConfig describes where the committed selection is persisted
type StorageConfig struct {
	Backend string `mapstructure:"backend" toml:"backend"`
	Path    string `mapstructure:"path" toml:"path"`
	Key     string `mapstructure:"key" toml:"key"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Locale      string `mapstructure:"locale" toml:"locale"`
	MaxVisible  int    `mapstructure:"max_visible" toml:"max_visible"`
	ShowIcons   bool   `mapstructure:"show_icons" toml:"show_icons"`
	Mouse       bool   `mapstructure:"mouse" toml:"mouse"`
	Placeholder string `mapstructure:"placeholder" toml:"placeholder"`
}

// LoggingSettings represents logging configuration
type LoggingSettings struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
	File   string `mapstructure:"file" toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	return &configService{filePath: filepath.Join(ConfigDir(), "config.toml")}
}

// NewConfigServiceForPath creates a config service for an explicit file
func NewConfigServiceForPath(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, creating a default file on first run
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			// Running without a writable config dir is fine; env and defaults still apply
			return cs.load("")
		}
	}
	return cs.load(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return cs.load(path)
}

func (cs *configService) load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Finalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize fills derived values and validates. Callers that override fields
// after loading (command-line flags) run it again.
func Finalize(cfg *Config) error {
	normalize(cfg)
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("COUNTRYPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())
	return v
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("source.kind", d.Source.Kind)
	v.SetDefault("source.url", d.Source.URL)
	v.SetDefault("source.path", d.Source.Path)
	v.SetDefault("source.timeout", d.Source.Timeout)
	v.SetDefault("source.retries", d.Source.Retries)
	v.SetDefault("source.retry_delay", d.Source.RetryDelay)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("ui.locale", d.UI.Locale)
	v.SetDefault("ui.max_visible", d.UI.MaxVisible)
	v.SetDefault("ui.show_icons", d.UI.ShowIcons)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.placeholder", d.UI.Placeholder)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}

// normalize fills derived paths and lower-cases enum fields
func normalize(cfg *Config) {
	cfg.Source.Kind = strings.ToLower(strings.TrimSpace(cfg.Source.Kind))
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	if cfg.Storage.Path == "" {
		switch cfg.Storage.Backend {
		case BackendSQLite:
			cfg.Storage.Path = filepath.Join(StateDir(), "selection.db")
		case BackendFile:
			cfg.Storage.Path = filepath.Join(StateDir(), "selection.toml")
		}
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = DefaultSelectionKey
	}
	if cfg.UI.MaxVisible <= 0 {
		cfg.UI.MaxVisible = DefaultConfig().UI.MaxVisible
	}
	if cfg.UI.Locale == "" {
		cfg.UI.Locale = "en"
	}
}

// Validate checks enum fields and required values
func Validate(cfg *Config) error {
	switch cfg.Source.Kind {
	case SourceHTTP:
		if cfg.Source.URL == "" {
			return errors.New("source.url is required for the http source")
		}
	case SourceFile:
		if cfg.Source.Path == "" {
			return errors.New("source.path is required for the file source")
		}
	case SourceEmbedded:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source.Kind)
	}

	switch cfg.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.Backend)
	}

	if cfg.Source.Retries < 0 {
		return errors.New("source.retries must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Source: SourceConfig{
			Kind:       SourceHTTP,
			URL:        DefaultSourceURL,
			Timeout:    10 * time.Second,
			Retries:    2,
			RetryDelay: 500 * time.Millisecond,
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Key:     DefaultSelectionKey,
		},
		UI: UISettings{
			Locale:      "en",
			MaxVisible:  10,
			ShowIcons:   true,
			Mouse:       true,
			Placeholder: "Country",
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// ConfigDir returns the countrypick config directory
func ConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName)
}

// StateDir returns the directory for the selection database and logs
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".local", "state", appName)
}
