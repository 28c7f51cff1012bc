// Package source loads the reference item list from its configured origin.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"countrypick/internal/config"
	"countrypick/internal/domain"
)

// ErrNoItems is returned when a source decodes to an empty list
var ErrNoItems = errors.New("source returned no usable items")

// Source produces the raw, unordered item list
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.Item, error)
}

// record is the restcountries v3.1 shape, trimmed to the fields we read
type record struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2 string `json:"cca2"`
	CCA3 string `json:"cca3"`
	Flag string `json:"flag"`
}

// Decode reads a JSON array of country records. Records without a name or a
// two-letter code are skipped.
func Decode(r io.Reader) ([]domain.Item, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	items := make([]domain.Item, 0, len(records))
	for _, rec := range records {
		name := strings.TrimSpace(rec.Name.Common)
		code := strings.TrimSpace(rec.CCA2)
		if name == "" || len([]rune(code)) != 2 {
			continue
		}
		icon := rec.Flag
		if icon == "" {
			icon = FlagFromCode(code)
		}
		items = append(items, domain.Item{
			DisplayName: name,
			ShortCode:   code,
			AltCode:     rec.CCA3,
			IconRef:     icon,
		})
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

// FlagFromCode builds the regional-indicator pair for a two-letter code.
// Anything that is not two ASCII letters yields an empty string.
func FlagFromCode(code string) string {
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r > unicode.MaxASCII || r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// New builds the source named in the configuration
func New(cfg config.SourceConfig) (Source, error) {
	switch cfg.Kind {
	case config.SourceHTTP:
		return NewHTTPSource(cfg.URL, cfg.Timeout, cfg.Retries, cfg.RetryDelay), nil
	case config.SourceFile:
		return NewFileSource(cfg.Path), nil
	case config.SourceEmbedded:
		return NewEmbeddedSource(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, cfg.Kind)
	}
}
