package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-api/internal/application/dto"
	"github.com/jhoicas/customer-api/internal/application/usecase"
	apphttp "github.com/jhoicas/customer-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/customer-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// HTTP Basic
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SinHeader_Retorna401(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)

	resp := env.doWithAuth(t, http.MethodGet, apphttp.CustomerPath, nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Basic")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

func TestAuth_PasswordIncorrecto_Retorna401(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)

	resp := env.doWithAuth(t, http.MethodGet, apphttp.CustomerPath, nil, basicAuth(testUser, "mala"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_UsuarioIncorrecto_Retorna401(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)

	resp := env.doWithAuth(t, http.MethodGet, apphttp.CustomerPath, nil, basicAuth("otro", testPassword))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_NoProtegeEscrituraSinCredenciales(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)

	resp := env.doWithAuth(t, http.MethodDelete, customerURL(env.seeded[0].ID.String()), nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 3, env.store.Len(), "una petición rechazada no debe borrar nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Bearer Token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_TokenEmitidoPermiteAcceso(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)

	resp := env.do(t, http.MethodPost, "/api/v1/auth/token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tok := decode[dto.TokenResponse](t, resp)
	require.NotEmpty(t, tok.Token)
	assert.Equal(t, "Bearer", tok.TokenType)

	resp = env.doWithAuth(t, http.MethodGet, apphttp.CustomerPath, nil, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_TokenInvalido_Retorna401(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)

	resp := env.doWithAuth(t, http.MethodGet, apphttp.CustomerPath, nil, "Bearer token.invalido.aqui")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuth_TokenExpirado_Retorna401(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)
	tok, _, err := pkgjwt.Generate(testJWTSecret, testUser, "customer-api-test", -1)
	require.NoError(t, err)

	resp := env.doWithAuth(t, http.MethodGet, apphttp.CustomerPath, nil, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_TokenDeOtroUsuario_Retorna401(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)
	tok, _, err := pkgjwt.Generate(testJWTSecret, "intruso", "customer-api-test", 5)
	require.NoError(t, err)

	resp := env.doWithAuth(t, http.MethodGet, apphttp.CustomerPath, nil, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_BearerVacio_Retorna401(t *testing.T) {
	env := newTestEnv(t, usecase.DeleteIdempotent)

	resp := env.doWithAuth(t, http.MethodGet, apphttp.CustomerPath, nil, "Bearer   ")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
