package cnpj

import "fmt"

// CNPJ is an unmasked, upper-case, checksum-valid identifier.
// The zero value is not a valid CNPJ; obtain one through Parse or Complete.
type CNPJ string

// IsValid reports whether raw is a well-formed CNPJ with matching check digits.
// Masked and lower-case input is accepted. Case folding covers ASCII letters
// only: a non-ASCII letter is rejected even when its upper-case form is in
// A-Z. It never returns an error: every failure collapses to false.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Validate is Parse for callers that only need the rejection reason.
func Validate(raw string) error {
	_, err := Parse(raw)
	return err
}

// Parse runs the validation gates in order and returns the normalized CNPJ or
// the error of the first gate that failed:
// blank or disallowed characters, length, all zeros, pattern, check digits.
func Parse(raw string) (CNPJ, error) {
	if isBlank(raw) {
		return "", fmt.Errorf("%w: empty input", ErrInvalidLength)
	}
	if !hasAllowedChars(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCharacters, raw)
	}

	s := RemoveMask(raw)
	if len(s) != Length {
		return "", fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(s), Length)
	}
	if allZeros(s) {
		return "", ErrAllZeros
	}
	if !matchesFull(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	base, informed := s[:BaseLength], s[BaseLength:]
	computed, err := computeCheckDigits(base)
	if err != nil {
		return "", err
	}
	if informed != computed {
		return "", fmt.Errorf("%w: got %s, want %s", ErrCheckDigitMismatch, informed, computed)
	}

	return CNPJ(s), nil
}

// CalculateCheckDigits returns the two check digits for a 12-character base.
// The base may be masked or lower-case.
func CalculateCheckDigits(base string) (string, error) {
	if !hasAllowedChars(base) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCharacters, base)
	}

	s := RemoveMask(base)
	if len(s) != BaseLength {
		return "", fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(s), BaseLength)
	}

	return computeCheckDigits(s)
}

// Complete appends the computed check digits to base.
func Complete(base string) (CNPJ, error) {
	dv, err := CalculateCheckDigits(base)
	if err != nil {
		return "", err
	}
	return CNPJ(RemoveMask(base) + dv), nil
}

// Format parses raw and renders it with the standard mask, e.g. 12.ABC.345/01DE-35.
func Format(raw string) (string, error) {
	c, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return c.Masked(), nil
}

// String returns the unmasked identifier.
func (c CNPJ) String() string {
	return string(c)
}

// IsZero reports whether c is the zero value.
func (c CNPJ) IsZero() bool {
	return c == ""
}

// Base returns the 12 significant characters.
func (c CNPJ) Base() string {
	if len(c) != Length {
		return ""
	}
	return string(c[:BaseLength])
}

// CheckDigits returns the two trailing check digits.
func (c CNPJ) CheckDigits() string {
	if len(c) != Length {
		return ""
	}
	return string(c[BaseLength:])
}

// Masked renders c as XX.XXX.XXX/XXXX-DD.
func (c CNPJ) Masked() string {
	if len(c) != Length {
		return string(c)
	}
	s := string(c)
	return s[0:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:14]
}

// MarshalText implements encoding.TextMarshaler.
func (c CNPJ) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Masked input is accepted.
func (c *CNPJ) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
