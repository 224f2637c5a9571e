package i18n

import "errors"

var (
	ErrNilAdapter                = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode         = errors.New("empty language code in translations")
	ErrYAMLParsingCancelled      = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML         = errors.New("failed to parse YAML content")
	ErrInvalidCatalogStructure   = errors.New("invalid translation catalog structure")
	ErrLoadingCancelled          = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read translations directory")
	ErrFailedToReadFile          = errors.New("failed to read translation file")
	ErrNoTranslationFiles        = errors.New("no translation files found")
	ErrDefaultLanguageNotDefined = errors.New("default language has no translations")
)
