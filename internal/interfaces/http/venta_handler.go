package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/venta"
)

// VentaHandler maneja el registro y la consulta de ventas (protegido).
type VentaHandler struct {
	registrar *venta.RegistrarVentaUseCase
	consulta  *venta.ConsultaVentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(registrar *venta.RegistrarVentaUseCase, consulta *venta.ConsultaVentaUseCase) *VentaHandler {
	return &VentaHandler{registrar: registrar, consulta: consulta}
}

// Registrar godoc
// @Summary      Registrar una venta
// @Description  Crea la cabecera, las líneas y descuenta stock; compensa si un paso falla.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVentaRequest  true  "Venta"
// @Success      201   {object}  dto.RegistrarVentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registrar.Registrar(c.Context(), GetTrabajadorID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve las ventas más recientes primero.
func (h *VentaHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.consulta.List(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve una venta con sus líneas.
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.consulta.GetConDetalles(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}
