package cnpj

import "errors"

var (
	// ErrInvalidCharacters is returned when the input contains anything other than
	// letters, digits and the mask separators ".", "-", "/".
	ErrInvalidCharacters = errors.New("cnpj contains invalid characters")

	// ErrInvalidLength is returned when the unmasked input has the wrong number of characters.
	ErrInvalidLength = errors.New("cnpj has invalid length")

	// ErrInvalidFormat is returned when the unmasked input does not match the expected pattern.
	ErrInvalidFormat = errors.New("cnpj has invalid format")

	// ErrAllZeros is returned when the base (or the whole identifier) is made of zeros only.
	ErrAllZeros = errors.New("cnpj cannot contain only zeros")

	// ErrInternal signals an inconsistency inside the check-digit computation.
	// It is unreachable when the preconditions hold.
	ErrInternal = errors.New("cnpj check digit computation failed")

	// ErrCheckDigitMismatch is returned by Parse when the informed check digits
	// differ from the computed ones.
	ErrCheckDigitMismatch = errors.New("cnpj check digits do not match")
)

// Translation keys for the sentinel errors, relative to the message catalog root.
const (
	KeyInvalidCharacters  = "cnpj.errors.invalid_characters"
	KeyInvalidLength      = "cnpj.errors.invalid_length"
	KeyInvalidFormat      = "cnpj.errors.invalid_format"
	KeyAllZeros           = "cnpj.errors.all_zeros"
	KeyInternal           = "cnpj.errors.internal"
	KeyCheckDigitMismatch = "cnpj.errors.check_digit_mismatch"
	KeyUnknown            = "cnpj.errors.unknown"
)

// ErrorKey maps an error returned by this package to its message catalog key.
// Errors that do not wrap a package sentinel map to KeyUnknown.
func ErrorKey(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCharacters):
		return KeyInvalidCharacters
	case errors.Is(err, ErrInvalidLength):
		return KeyInvalidLength
	case errors.Is(err, ErrInvalidFormat):
		return KeyInvalidFormat
	case errors.Is(err, ErrAllZeros):
		return KeyAllZeros
	case errors.Is(err, ErrInternal):
		return KeyInternal
	case errors.Is(err, ErrCheckDigitMismatch):
		return KeyCheckDigitMismatch
	default:
		return KeyUnknown
	}
}
