// Package i18n renders user-facing messages of the CNPJ toolkit in the
// caller's language.
//
// Messages live in YAML catalogs keyed by language tag at the top level and
// by dot-separated keys below it:
//
//	pt-BR:
//	  validation:
//	    cnpj: "O campo %{field} não é um CNPJ alfanumérico válido."
//
// A Translator loads catalogs through a TranslationAdapter. MapAdapter serves
// in-memory data, FSAdapter reads every *.yaml/*.yml file from a directory of
// an fs.FS. NewCatalog wires the catalog embedded in this package.
//
// # Usage
//
//	tr, err := i18n.NewCatalog(ctx, i18n.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	lang := tr.Match("en-US") // "en"
//	msg := tr.T(lang, "validation.cnpj", "field", "document")
//
// Placeholders use the %{name} form and are filled from key/value argument
// pairs. When a language is not available the default language is tried, and
// when the key is missing there too the key itself is returned.
//
// The Translator is read-only after construction and safe for concurrent use.
package i18n
