package source

import (
	"bytes"
	"context"
	_ "embed"

	"countrypick/internal/domain"
)

//go:embed countries.json
var countriesJSON []byte

// EmbeddedSource serves the country list bundled into the binary
type EmbeddedSource struct{}

func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

func (s *EmbeddedSource) Name() string { return "embedded" }

func (s *EmbeddedSource) Load(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(countriesJSON))
}
