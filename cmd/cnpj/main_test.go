package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cnpj/pkg/config"
)

func runCmd(t *testing.T, environ map[string]string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	if environ == nil {
		environ = map[string]string{}
	}
	var out, errOut bytes.Buffer
	code = run(args, environ, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCmd(t, nil, "-v", "12.ABC.345/01DE-35", "12abc34501de99", "00000000000000")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[1] CNPJ: [12.ABC.345/01DE-35] ✓ Válido", lines[0])
	assert.Equal(t, "[2] CNPJ: [12ABC34501DE99] ✗ Inválido", lines[1])
	assert.Equal(t, "[3] CNPJ: [00000000000000] ✗ Inválido", lines[2])
	assert.Empty(t, stderr)
}

func TestRun_ValidateLongFlagAndLowerCase(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCmd(t, nil, "--validate", "12abc34501de35")
	require.Equal(t, 0, code)
	assert.Equal(t, "[1] CNPJ: [12ABC34501DE35] ✓ Válido\n", stdout)
}

func TestRun_CheckDigits(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCmd(t, nil, "-dv", "12.ABC.345/01DE", "000000000000", "12ABC34501DE")
	require.Equal(t, 0, code)

	assert.Equal(t,
		"[1] CNPJ: [12.ABC.345/01DE] DV: [35]\n"+
			"    CNPJ Completo: 12ABC34501DE35\n"+
			"[3] CNPJ: [12ABC34501DE] DV: [35]\n"+
			"    CNPJ Completo: 12ABC34501DE35\n",
		stdout,
	)
	assert.Equal(t, "[2] Erro ao calcular DV para CNPJ [000000000000]: CNPJ não pode conter apenas zeros\n", stderr)
}

func TestRun_CheckDigitsErrorsAreLocalized(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCmd(t, nil, "--lang", "en", "--dv", "12ABC", "12AB#34501DE")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "[1] Failed to compute DV for CNPJ [12ABC]: CNPJ must have 12 characters")
	assert.Contains(t, stderr, "[2] Failed to compute DV for CNPJ [12AB#34501DE]: CNPJ contains characters that are not allowed")
}

func TestRun_LanguageFromEnvironment(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCmd(t, map[string]string{"CNPJ_LANG": "en_US.UTF-8"}, "-v", "12ABC34501DE35")
	require.Equal(t, 0, code)
	assert.Equal(t, "[1] CNPJ: [12ABC34501DE35] ✓ Valid\n", stdout)

	code, stdout, _ = runCmd(t, map[string]string{"CNPJ_LANG": "en"}, "--lang", "pt-BR", "-v", "12ABC34501DE35")
	require.Equal(t, 0, code)
	assert.Equal(t, "[1] CNPJ: [12ABC34501DE35] ✓ Válido\n", stdout)
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no arguments", nil, "especifique uma operação"},
		{"identifiers without mode", []string{"12ABC34501DE35"}, "especifique uma operação"},
		{"mode without identifiers", []string{"-v"}, "pelo menos um CNPJ"},
		{"both modes", []string{"-v", "-dv", "12ABC34501DE35"}, "apenas uma operação"},
		{"unknown flag", []string{"-x", "12ABC34501DE35"}, "unknown flag"},
	}
	for _, tt := range tests {
		code, stdout, stderr := runCmd(t, nil, tt.args...)
		assert.Equal(t, 1, code, tt.name)
		assert.Empty(t, stdout, tt.name)
		assert.Contains(t, stderr, tt.wantErr, tt.name)
		assert.Contains(t, stderr, "Usage:", tt.name)
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCmd(t, nil, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "--validate")
	assert.Contains(t, stdout, "--dv")
}

func TestRun_BadLogSettings(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCmd(t, nil, "--log-level", "loud", "-v", "12ABC34501DE35")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid log level")

	code, _, stderr = runCmd(t, map[string]string{"CNPJ_LOG_FORMAT": "xml"}, "-v", "12ABC34501DE35")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid log format")
}

func TestRun_DebugLogging(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCmd(t, map[string]string{"APP_ENV": "prod"}, "--dbg", "--log-format", "json", "-dv", "000000000000")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, `"msg":"check digit computation failed"`)
	assert.Contains(t, stderr, `"env":"production"`)
	assert.Contains(t, stderr, `"component":"cli"`)
	assert.Contains(t, stderr, `"cnpj":"000000000000"`)
}

func TestRun_ProcessEnvironment(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("CNPJ_LANG", "en")
	t.Setenv("CNPJ_LOG_LEVEL", "warn")
	t.Setenv("CNPJ_LOG_FORMAT", "text")

	var out, errOut bytes.Buffer
	code := run([]string{"-v", "12ABC34501DE35"}, nil, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "[1] CNPJ: [12ABC34501DE35] ✓ Valid\n", out.String())

	// Cached until reset.
	t.Setenv("CNPJ_LANG", "pt-BR")
	out.Reset()
	code = run([]string{"-v", "12ABC34501DE35"}, nil, &out, &errOut)
	require.Equal(t, 0, code)
	assert.Equal(t, "[1] CNPJ: [12ABC34501DE35] ✓ Valid\n", out.String())

	config.Reset()
	out.Reset()
	code = run([]string{"-v", "12ABC34501DE35"}, nil, &out, &errOut)
	require.Equal(t, 0, code)
	assert.Equal(t, "[1] CNPJ: [12ABC34501DE35] ✓ Válido\n", out.String())
}

func TestLegacyArgs(t *testing.T) {
	t.Parallel()

	in := []string{"-dv", "x", "--", "-dv"}
	assert.Equal(t, []string{"--dv", "x", "--", "-dv"}, legacyArgs(in))
	assert.Equal(t, "-dv", in[0])
}
