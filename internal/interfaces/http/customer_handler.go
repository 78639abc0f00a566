package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/customer-api/internal/application/dto"
	"github.com/jhoicas/customer-api/internal/application/usecase"
	"github.com/jhoicas/customer-api/pkg/logger"
)

// CustomerPath ruta base del recurso; también se usa para el header Location.
const CustomerPath = "/api/v1/customer"

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     BasicAuth
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Router       /api/v1/customer [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListCustomers(c.UserContext())
	if err != nil {
		return h.internal(c, err, "listar clientes")
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Security     BasicAuth
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente (UUID)"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/customer/{customerId} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetCustomerByID(c.UserContext(), id)
	if err != nil {
		return h.internal(c, err, "obtener cliente")
	}
	customer, found := out.Get()
	if !found {
		return notFound(c)
	}
	return c.JSON(customer)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Header       201   {string}  Location  "/api/v1/customer/{id}"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/customer [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	saved, err := h.uc.SaveNewCustomer(c.UserContext(), in)
	if err != nil {
		return h.internal(c, err, "crear cliente")
	}
	h.log.Debug().Str("customer_id", saved.ID.String()).Msg("cliente creado")
	c.Set(fiber.HeaderLocation, CustomerPath+"/"+saved.ID.String())
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// Update godoc
// @Summary      Reemplazar cliente
// @Tags         customers
// @Security     BasicAuth
// @Accept       json
// @Param        customerId  path  string                     true  "ID del cliente (UUID)"
// @Param        body        body  dto.UpdateCustomerRequest  true  "Datos del cliente"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/customer/{customerId} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateCustomerByID(c.UserContext(), id, in)
	if err != nil {
		return h.internal(c, err, "actualizar cliente")
	}
	if !out.IsPresent() {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Patch godoc
// @Summary      Actualizar parcialmente un cliente
// @Description  Solo se aplican los campos presentes; un customerName en blanco se ignora.
// @Tags         customers
// @Security     BasicAuth
// @Accept       json
// @Param        customerId  path  string                    true  "ID del cliente (UUID)"
// @Param        body        body  dto.PatchCustomerRequest  true  "Campos a modificar"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/customer/{customerId} [patch]
func (h *CustomerHandler) Patch(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.PatchCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.PatchCustomerByID(c.UserContext(), id, in)
	if err != nil {
		return h.internal(c, err, "actualizar parcialmente cliente")
	}
	if !out.IsPresent() {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Con DELETE_POLICY=idempotent siempre responde 204; con strict, 404 si no existe.
// @Tags         customers
// @Security     BasicAuth
// @Param        customerId  path  string  true  "ID del cliente (UUID)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/customer/{customerId} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return invalidID(c)
	}
	deleted, err := h.uc.DeleteByID(c.UserContext(), id)
	if err != nil {
		return h.internal(c, err, "eliminar cliente")
	}
	if !deleted {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) internal(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Str("op", op).Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func customerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("customerId"))
	return id, err == nil
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "customerId debe ser un UUID"})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
}
