// Package validator adapts CNPJ checks to declarative, translation-friendly
// validation rules, the shape form and request binders expect.
//
// A Rule pairs a Check, which returns the rejection error or nil, with a
// ValidationError describing the failure.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// satisfies the error interface:
//
//	err := validator.Apply(
//	    validator.Required("cnpj", form.CNPJ),
//	    validator.ValidCNPJ("cnpj", form.CNPJ),
//	)
//	if verrs, ok := validator.AsValidationErrors(err); ok {
//	    msgs := validator.Translate(tr, "pt-BR", verrs)
//	    // msgs["cnpj"][0] == "O cnpj informado não é um CNPJ alfanumérico válido."
//	}
//
// Each ValidationError carries a TranslationKey and TranslationValues that
// match the message catalog of package i18n.
package validator
