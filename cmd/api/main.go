package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/customer-api/internal/application/auth"
	"github.com/jhoicas/customer-api/internal/application/usecase"
	"github.com/jhoicas/customer-api/internal/domain/repository"
	"github.com/jhoicas/customer-api/internal/infrastructure/memory"
	"github.com/jhoicas/customer-api/internal/infrastructure/metrics"
	"github.com/jhoicas/customer-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/customer-api/internal/interfaces/http"
	"github.com/jhoicas/customer-api/pkg/config"
	"github.com/jhoicas/customer-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("delete_policy", cfg.Store.DeletePolicy).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Store: un único store por proceso, construido aquí y descartado al salir.
	var store repository.CustomerStore
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgStore := postgres.NewCustomerStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
		store = pgStore
	default:
		store = memory.NewCustomerStore()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	instrumented := metrics.NewInstrumentedStore(store, metrics.NewMetrics(reg))

	existing, err := instrumented.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listar clientes existentes")
	}
	// Solo se siembra un store vacío, para no duplicar datos en PostgreSQL.
	if cfg.Store.Seed && len(existing) == 0 {
		seeded, err := memory.Seed(ctx, instrumented, memory.DefaultCustomers())
		if err != nil {
			log.Fatal().Err(err).Msg("cargar clientes semilla")
		}
		log.Info().Int("customers", len(seeded)).Msg("clientes semilla cargados")
	}

	policy, err := usecase.ParseDeletePolicy(cfg.Store.DeletePolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("política de borrado")
	}
	customerUC := usecase.NewCustomerUseCase(instrumented, policy)

	authUC, err := auth.NewAuthUseCase(auth.Credentials{
		Username:     cfg.Auth.Username,
		Password:     cfg.Auth.Password,
		PasswordHash: cfg.Auth.PasswordHash,
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de autenticación")
	}
	if !authUC.TokensEnabled() {
		log.Warn().Msg("JWT_SECRET vacío: solo se acepta HTTP Basic")
	}

	opts := httpRouter.AppOptions{Name: cfg.App.Name}
	if cfg.Docs.Enabled {
		opts.DocsFile = cfg.Docs.FilePath
	}
	app := httpRouter.NewApp(opts, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		AuthUC:     authUC,
		Logger:     log,
		Metrics:    adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
