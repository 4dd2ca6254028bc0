package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/usecase"
)

// ReporteHandler reportes de ventas e inventario (protegido).
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Ventas reporte por rango de fechas; por defecto los últimos 30 días.
func (h *ReporteHandler) Ventas(c *fiber.Ctx) error {
	hasta := c.Query("hasta", time.Now().Format("2006-01-02"))
	desde := c.Query("desde", time.Now().AddDate(0, 0, -30).Format("2006-01-02"))
	out, err := h.uc.Ventas(c.Context(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Inventario resumen de stock actual.
func (h *ReporteHandler) Inventario(c *fiber.Ctx) error {
	out, err := h.uc.Inventario(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
