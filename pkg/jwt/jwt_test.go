package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/customer-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, exp, err := pkgjwt.Generate(testSecret, "user", "customer-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.False(t, exp.IsZero())

	username, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user", username)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "user", "customer-api-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "user", "customer-api-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, _, err := pkgjwt.Generate("", "user", "x", 60)
	assert.Error(t, err)
}
