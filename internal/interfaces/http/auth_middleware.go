package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/jhoicas/customer-api/internal/application/auth"
	"github.com/jhoicas/customer-api/internal/application/dto"
)

// LocalUsername key de c.Locals con el usuario autenticado.
const LocalUsername = "username"

const realm = "customer-api"

// AuthMiddleware acepta HTTP Basic o un Bearer Token emitido por /api/v1/auth/token.
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	basic := basicauth.New(basicauth.Config{
		Realm:           realm,
		Authorizer:      uc.Authenticate,
		ContextUsername: LocalUsername,
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="`+realm+`"`)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales requeridas"})
		},
	})

	return func(c *fiber.Ctx) error {
		scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return basic(c)
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		username, err := uc.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// GetUsername devuelve el usuario del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}
