package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/usecase"
)

// ArticuloHandler maneja las peticiones HTTP para artículos (protegido).
type ArticuloHandler struct {
	uc *usecase.ArticuloUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *usecase.ArticuloUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"
// @Success      200    {array}  entity.Articulo
// @Router       /api/articulos [get]
func (h *ArticuloHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.List(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListVendibles catálogo de venta: activos con stock.
func (h *ArticuloHandler) ListVendibles(c *fiber.Ctx) error {
	out, err := h.uc.ListVendibles(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve un artículo por id.
func (h *ArticuloHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticuloRequest  true  "Datos del artículo"
// @Success      201   {object}  entity.Articulo
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/articulos [post]
func (h *ArticuloHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica una actualización parcial del artículo.
func (h *ArticuloHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un artículo.
func (h *ArticuloHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo eliminado"})
}
