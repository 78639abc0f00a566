package http_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/customer-api/internal/application/auth"
	"github.com/jhoicas/customer-api/internal/application/usecase"
	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/customer-api/internal/interfaces/http"
	"github.com/jhoicas/customer-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUser      = "user"
	testPassword  = "password"
	testJWTSecret = "test-secret-key-for-unit-tests"
)

type testEnv struct {
	app    *fiber.App
	store  *memory.CustomerStore
	seeded []entity.Customer
	authUC *auth.AuthUseCase
}

// newTestEnv construye la app completa sobre un store en memoria con los 3 clientes semilla.
func newTestEnv(t *testing.T, policy usecase.DeletePolicy) *testEnv {
	t.Helper()
	store := memory.NewCustomerStore()
	seeded, err := memory.Seed(context.Background(), store, memory.DefaultCustomers())
	require.NoError(t, err)

	authUC, err := auth.NewAuthUseCase(
		auth.Credentials{Username: testUser, Password: testPassword},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5, Issuer: "customer-api-test"},
		bcrypt.MinCost,
	)
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.AppOptions{Name: "customer-api-test"}, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(store, policy),
		AuthUC:     authUC,
		Logger:     logger.Nop(),
	})
	return &testEnv{app: app, store: store, seeded: seeded, authUC: authUC}
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

// do lanza una petición autenticada con Basic; body puede ser nil.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()
	return e.doWithAuth(t, method, path, body, basicAuth(testUser, testPassword))
}

func (e *testEnv) doWithAuth(t *testing.T, method, path string, body interface{}, authHeader string) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func customerURL(id string) string {
	return apphttp.CustomerPath + "/" + id
}
