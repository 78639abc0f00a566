package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "idempotent", cfg.Store.DeletePolicy)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "user", cfg.Auth.Username)
	assert.False(t, cfg.Docs.Enabled)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "POSTGRES")
	t.Setenv("STORE_SEED", "false")
	t.Setenv("DELETE_POLICY", "strict")
	t.Setenv("AUTH_USERNAME", "admin")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, "strict", cfg.Store.DeletePolicy)
	assert.Equal(t, "admin", cfg.Auth.Username)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_PoliticaInvalida(t *testing.T) {
	t.Setenv("DELETE_POLICY", "soft")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:w/rd", DBName: "customers", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aw%2Frd@db:5432/customers?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", db.ConnectionString())
}
