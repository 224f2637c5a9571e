package validator

import (
	"errors"
	"strings"
)

// ValidationError describes one failed rule. Cause is the error returned by
// the rule's check; errors.Is reaches it through Unwrap.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Cause             error
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// ValidationErrors collects every failed rule of an Apply call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, err := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Unwrap exposes each failure so errors.Is can match a rule's cause,
// e.g. cnpj.ErrCheckDigitMismatch.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ve))
	for i, err := range ve {
		errs[i] = err
	}
	return errs
}

// Field returns the failures recorded for field, in rule order.
func (ve ValidationErrors) Field(field string) ValidationErrors {
	var out ValidationErrors
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Messages returns the untranslated messages recorded for field.
func (ve ValidationErrors) Messages(field string) []string {
	var messages []string
	for _, err := range ve.Field(field) {
		messages = append(messages, err.Message)
	}
	return messages
}

// Fields returns the failing fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]struct{}, len(ve))
	for _, err := range ve {
		if _, ok := seen[err.Field]; ok {
			continue
		}
		seen[err.Field] = struct{}{}
		fields = append(fields, err.Field)
	}
	return fields
}

// Rule binds a check to the failure it reports. A nil error from Check
// means the value passed.
type Rule struct {
	Check func() error
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failing ones,
// or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		cause := rule.Check()
		if cause == nil {
			continue
		}
		failure := rule.Error
		failure.Cause = cause
		errs = append(errs, failure)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// AsValidationErrors finds ValidationErrors in err's chain.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if err == nil || !errors.As(err, &verrs) {
		return nil, false
	}
	return verrs, true
}
