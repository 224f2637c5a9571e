package cnpj

import (
	"regexp"
	"strings"
)

const (
	// BaseLength is the number of significant characters, excluding check digits.
	BaseLength = 12
	// CheckDigitsLength is the number of trailing check digits.
	CheckDigitsLength = 2
	// Length is the size of an unmasked identifier with check digits.
	Length = BaseLength + CheckDigitsLength
)

var (
	// Letters are accepted in either case here; the normalizer folds them.
	allowedCharsRegex = regexp.MustCompile(`^[A-Za-z0-9./-]*$`)
	fullRegex         = regexp.MustCompile(`^[A-Z0-9]{12}[0-9]{2}$`)
	baseRegex         = regexp.MustCompile(`^[A-Z0-9]{12}$`)
)

// hasAllowedChars checks the raw, still masked input.
func hasAllowedChars(raw string) bool {
	return allowedCharsRegex.MatchString(raw)
}

// isBlank reports whether raw has nothing but whitespace.
func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

// matchesFull checks an unmasked 14-character identifier.
func matchesFull(s string) bool {
	return fullRegex.MatchString(s)
}

// matchesBase checks an unmasked 12-character base.
func matchesBase(s string) bool {
	return baseRegex.MatchString(s)
}
