package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is the language used when nothing else matches.
const DefaultLanguage = "pt-BR"

// Translator resolves message keys for a language.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	matcher        *languageMatcher
	mu             sync.RWMutex
}

// NewTranslator creates a Translator with translations loaded from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.matcher = newLanguageMatcher(t.defaultLang, t.supportedLanguages())
	t.logger.DebugContext(ctx, "translations loaded",
		slog.Any("languages", t.supportedLanguages()),
		slog.String("default", t.defaultLang),
	)
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	for lang, messages := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if messages == nil {
			return fmt.Errorf("%w: nil translations for language %q", ErrInvalidCatalogStructure, lang)
		}
	}
	if _, ok := trans[t.defaultLang]; !ok {
		return fmt.Errorf("%w: %q", ErrDefaultLanguageNotDefined, t.defaultLang)
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted list of loaded languages.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the supported language closest to preferred. See MatchLanguage.
func (t *Translator) Match(preferred string) string {
	return t.matcher.match(preferred)
}

// getTranslation walks a nested map using a dot-separated key.
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// HasTranslation reports whether lang defines a string for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, key)
	return ok
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := getTranslation(messages, key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf fills %{name} placeholders from key/value pairs.
// Unknown placeholders are kept; a trailing odd argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting key/value args:
//
//	tr.T("en", "validation.cnpj", "field", "document")
//
// A missing language or key falls back to the default language, then to the
// key itself (or "" when WithFallbackToKey(false)).
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}

	if lang != t.defaultLang {
		if tmpl, ok := t.lookup(t.defaultLang, key); ok {
			return sprintf(tmpl, args)
		}
	}

	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}
