package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrRequired is the cause recorded by Required.
	ErrRequired = errors.New("value is required")
)
