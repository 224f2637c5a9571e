package validator

import (
	"fmt"
	"sort"
)

// Translator is the subset of i18n.Translator used to render messages.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Translate renders every error in lang, grouped by field. Errors without a
// TranslationKey, or a nil translator, fall back to the raw Message.
func Translate(tr Translator, lang string, errs ValidationErrors) map[string][]string {
	if len(errs) == 0 {
		return nil
	}

	out := make(map[string][]string, len(errs))
	for _, err := range errs {
		out[err.Field] = append(out[err.Field], TranslateError(tr, lang, err))
	}
	return out
}

// TranslateError renders a single error in lang.
func TranslateError(tr Translator, lang string, err ValidationError) string {
	if tr == nil || err.TranslationKey == "" {
		return err.Message
	}
	return tr.T(lang, err.TranslationKey, translationArgs(err.TranslationValues)...)
}

// translationArgs flattens values into sorted key/value pairs.
func translationArgs(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
