package cnpj

import (
	"fmt"
	"strconv"
)

// Weight tables for the two check digits. The largest weight pairs with the
// most significant character; the second table is the first one prefixed by 6
// so the first check digit lines up with the final weight.
var (
	weightsDV1 = [BaseLength]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	weightsDV2 = [BaseLength + 1]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// charValue returns the checksum value of a single normalized character:
// its ASCII code minus '0'. Digits keep their face value, letters map to 17..42.
func charValue(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c) - int('0'), nil
	case c >= 'A' && c <= 'Z':
		return int(c) - int('0'), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacters, c)
	}
}

// valuesOf converts a normalized string into checksum values.
func valuesOf(s string) ([]int, error) {
	values := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		v, err := charValue(s[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// computeDigit applies the weighted modulo-11 rule. Weights are consumed from
// the left; values longer than the weight table are an internal error.
func computeDigit(values, weights []int) (int, error) {
	if len(values) > len(weights) {
		return 0, fmt.Errorf("%w: %d values for %d weights", ErrInternal, len(values), len(weights))
	}

	sum := 0
	for i, v := range values {
		sum += v * weights[i]
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0, nil
	}
	return 11 - remainder, nil
}

// computeCheckDigits derives both check digits from an unmasked base.
// The base must already have the right length.
func computeCheckDigits(base string) (string, error) {
	if !matchesBase(base) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, base)
	}
	if allZeros(base) {
		return "", ErrAllZeros
	}

	values, err := valuesOf(base)
	if err != nil {
		return "", err
	}

	dv1, err := computeDigit(values, weightsDV1[:])
	if err != nil {
		return "", err
	}

	dv2, err := computeDigit(append(values, dv1), weightsDV2[:])
	if err != nil {
		return "", err
	}

	return strconv.Itoa(dv1) + strconv.Itoa(dv2), nil
}
