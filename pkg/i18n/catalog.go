package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewCatalog returns a Translator over the embedded message catalog
// (pt-BR and en).
func NewCatalog(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(NewYAMLParser(), locales, "locales"), options...)
}
