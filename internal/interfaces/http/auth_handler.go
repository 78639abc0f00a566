package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/customer-api/internal/application/auth"
	"github.com/jhoicas/customer-api/internal/application/dto"
	"github.com/jhoicas/customer-api/internal/domain"
)

// AuthHandler emite tokens Bearer para usuarios autenticados.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Emitir token Bearer
// @Tags         auth
// @Security     BasicAuth
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	out, err := h.uc.IssueToken(GetUsername(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TOKENS_DISABLED", Message: "JWT_SECRET no configurado"})
		}
		return err
	}
	return c.JSON(out)
}
