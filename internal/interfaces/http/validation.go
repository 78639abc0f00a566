package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/customer-api/internal/application/dto"
)

var validate = newValidator()

// newValidator usa los nombres JSON de los campos en los mensajes de error.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodifica y valida el body en out. Si falla, ya escribió la respuesta 400
// y devuelve false.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(validationResponse(err))
	}
	return true, nil
}

func validationResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Code: "VALIDATION", Message: "la validación del cuerpo falló"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Details = append(resp.Details, dto.FieldDetail{Field: fe.Field(), Message: validationMessage(fe)})
		}
	}
	return resp
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo requerido"
	case "max":
		return "máximo " + fe.Param() + " caracteres"
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}
