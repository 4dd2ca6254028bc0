package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/infrastructure/supabase"
)

// respondError traduce errores de dominio e infraestructura a respuestas
// HTTP. Una venta parcial se reporta con su propio código para que el
// operador sepa que hay filas que reconciliar; los fallos del backend remoto
// no se disfrazan de "sin resultados".
func respondError(c *fiber.Ctx, err error) error {
	var parcial *domain.VentaParcialError
	if errors.As(err, &parcial) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "VENTA_PARCIAL",
			Message: parcial.Error(),
		})
	}

	var backend *supabase.BackendError
	if errors.As(err, &backend) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:    "BACKEND",
			Message: backend.Error(),
		})
	}
	var transporte *supabase.TransportError
	if errors.As(err, &transporte) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "TRANSPORTE",
			Message: "el backend no está disponible",
		})
	}

	switch {
	case errors.Is(err, domain.ErrVentaVacia),
		errors.Is(err, domain.ErrSubtotalInvalido),
		errors.Is(err, domain.ErrPasswordCorta),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrStockInsuficiente),
		errors.Is(err, domain.ErrConflictoStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
