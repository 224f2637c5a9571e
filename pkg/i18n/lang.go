package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// languageMatcher maps free-form language preferences onto supported tags.
// The default language is always the first candidate so it wins on no match.
type languageMatcher struct {
	supported []string
	matcher   language.Matcher
}

func newLanguageMatcher(defaultLang string, langs []string) *languageMatcher {
	supported := make([]string, 0, len(langs)+1)
	supported = append(supported, defaultLang)
	for _, l := range langs {
		if l != defaultLang {
			supported = append(supported, l)
		}
	}

	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = language.Make(l)
	}

	return &languageMatcher{supported: supported, matcher: language.NewMatcher(tags)}
}

func (m *languageMatcher) match(preferred string) string {
	preferred = normalizeLanguage(preferred)
	if preferred == "" {
		return m.supported[0]
	}

	tags, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(tags) == 0 {
		return m.supported[0]
	}

	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(m.supported) {
		return m.supported[0]
	}
	return m.supported[idx]
}

// normalizeLanguage accepts POSIX locale values such as "pt_BR.UTF-8" and
// Accept-Language lists. The codeset and modifier suffixes are stripped from
// each tag; q-values are left untouched.
func normalizeLanguage(s string) string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		tag, params, hasParams := strings.Cut(part, ";")
		tag = normalizeTag(tag)
		if tag == "" {
			continue
		}
		if hasParams {
			tag += ";" + strings.TrimSpace(params)
		}
		out = append(out, tag)
	}
	return strings.Join(out, ", ")
}

func normalizeTag(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

// MatchLanguage resolves preferred (a BCP 47 tag, an Accept-Language list, or
// a POSIX locale) against supported. The first entry of supported is the
// fallback.
func MatchLanguage(preferred string, supported ...string) string {
	if len(supported) == 0 {
		return ""
	}
	return newLanguageMatcher(supported[0], supported[1:]).match(preferred)
}
