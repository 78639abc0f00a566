package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
	DB    DBConfig
	Auth  AuthConfig
	JWT   JWTConfig
	Docs  DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selección del almacenamiento de clientes.
type StoreConfig struct {
	Driver       string // memory | postgres
	Seed         bool   // cargar los clientes de demostración al arrancar
	DeletePolicy string // idempotent | strict
}

// DBConfig configuración de PostgreSQL (solo con STORE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// AuthConfig credenciales HTTP Basic de la API.
// PasswordHash (bcrypt) tiene prioridad sobre Password en texto plano.
type AuthConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

// JWTConfig configuración de los tokens Bearer emitidos por /api/v1/auth/token.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// DocsConfig Swagger UI.
type DocsConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORE_DRIVER, AUTH_USERNAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "customer-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Driver:       strings.ToLower(getString(v, "STORE_DRIVER", "memory")),
			Seed:         getBool(v, "STORE_SEED", true),
			DeletePolicy: strings.ToLower(getString(v, "DELETE_POLICY", "idempotent")),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "customers"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			Username:     getString(v, "AUTH_USERNAME", "user"),
			Password:     getString(v, "AUTH_PASSWORD", "password"),
			PasswordHash: getString(v, "AUTH_PASSWORD_HASH", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "customer-api"),
		},
		Docs: DocsConfig{
			Enabled:  getBool(v, "DOCS_ENABLED", false),
			FilePath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "memory", "postgres":
	default:
		return fmt.Errorf("STORE_DRIVER inválido: %q (memory | postgres)", c.Store.Driver)
	}
	switch c.Store.DeletePolicy {
	case "idempotent", "strict":
	default:
		return fmt.Errorf("DELETE_POLICY inválido: %q (idempotent | strict)", c.Store.DeletePolicy)
	}
	if c.Auth.Username == "" {
		return fmt.Errorf("AUTH_USERNAME requerido")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
