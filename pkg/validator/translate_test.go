package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cnpj/pkg/i18n"
	"github.com/dmitrymomot/cnpj/pkg/validator"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewCatalog(context.Background(), i18n.WithNoLogging())
	require.NoError(t, err)

	verrs := mustValidationErrors(t, validator.Apply(
		validator.ValidCNPJ("cnpj", "12ABC34501DE99"),
		validator.ValidCNPJBase("base", "000000000000"),
	))
	require.Len(t, verrs, 2)

	pt := validator.Translate(tr, "pt-BR", verrs)
	assert.Equal(t, []string{"O cnpj informado não é um CNPJ alfanumérico válido."}, pt["cnpj"])
	assert.Equal(t, []string{"O base informado não é uma base de CNPJ alfanumérico válida."}, pt["base"])

	en := validator.Translate(tr, "en", verrs)
	assert.Equal(t, []string{"The cnpj is not a valid alphanumeric CNPJ."}, en["cnpj"])

	assert.Nil(t, validator.Translate(tr, "en", nil))
}

func TestTranslateError_Fallbacks(t *testing.T) {
	t.Parallel()

	plain := validator.ValidationError{Field: "x", Message: "raw message"}
	assert.Equal(t, "raw message", validator.TranslateError(nil, "en", plain))

	keyed := validator.ValidationError{Field: "x", Message: "raw message", TranslationKey: "validation.cnpj"}
	assert.Equal(t, "raw message", validator.TranslateError(nil, "en", keyed))

	tr, err := i18n.NewCatalog(context.Background(), i18n.WithNoLogging())
	require.NoError(t, err)
	assert.Equal(t, "raw message", validator.TranslateError(tr, "en", plain))
}
