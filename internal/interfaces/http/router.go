package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/customer-api/internal/application/auth"
	"github.com/jhoicas/customer-api/internal/application/usecase"
	"github.com/jhoicas/customer-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	AuthUC     *auth.AuthUseCase
	Logger     *logger.Logger
	// Metrics handler de /metrics; nil = sin endpoint.
	Metrics fiber.Handler
}

// AppOptions opciones de la aplicación Fiber.
type AppOptions struct {
	Name string
	// DocsFile ruta al swagger.json; vacío = sin Swagger UI.
	DocsFile string
}

// NewApp construye la aplicación Fiber con middlewares y rutas registradas.
func NewApp(opts AppOptions, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(AccessLog(deps.Logger))

	// Swagger UI: http://localhost:<port>/docs
	if opts.DocsFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: opts.DocsFile,
			Path:     "docs",
			Title:    opts.Name,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics)
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v1 := app.Group("/api/v1", AuthMiddleware(deps.AuthUC))

	authHandler := NewAuthHandler(deps.AuthUC)
	v1.Post("/auth/token", authHandler.Token)

	customers := v1.Group("/customer")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Logger)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:customerId", customerHandler.GetByID)
	customers.Put("/:customerId", customerHandler.Update)
	customers.Patch("/:customerId", customerHandler.Patch)
	customers.Delete("/:customerId", customerHandler.Delete)
}
