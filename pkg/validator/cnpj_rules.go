package validator

import (
	"strings"

	"github.com/dmitrymomot/cnpj/pkg/cnpj"
)

// Required validates that value is not blank.
func Required(field, value string) Rule {
	return Rule{
		Check: func() error {
			if strings.TrimSpace(value) == "" {
				return ErrRequired
			}
			return nil
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// ValidCNPJ validates a full alphanumeric CNPJ, masked or not.
// The failure's Cause is the cnpj package error that rejected value.
func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() error {
			return cnpj.Validate(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid alphanumeric CNPJ",
			TranslationKey:    "validation.cnpj",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// ValidCNPJBase validates a 12-character base from which check digits can be computed.
func ValidCNPJBase(field, value string) Rule {
	return Rule{
		Check: func() error {
			_, err := cnpj.CalculateCheckDigits(value)
			return err
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid alphanumeric CNPJ base",
			TranslationKey:    "validation.cnpj_base",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
