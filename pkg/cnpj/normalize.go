package cnpj

import "strings"

// maskReplacer drops the formatting separators in a single pass.
var maskReplacer = strings.NewReplacer(".", "", "-", "", "/", "")

// RemoveMask strips ".", "-" and "/" from raw and upper-cases ASCII letters.
// Other characters are passed through untouched; they are rejected later by
// the format checks.
func RemoveMask(raw string) string {
	return strings.Map(toUpperASCII, maskReplacer.Replace(raw))
}

// toUpperASCII folds a-z only. Unicode case mapping would turn letters such
// as 'ı' or 'ſ' into ASCII ones.
func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// allZeros reports whether s is non-empty and made of '0' only.
func allZeros(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
