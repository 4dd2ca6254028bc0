package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrPasswordCorta     = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrVentaVacia        = errors.New("la venta no tiene items")
	ErrSubtotalInvalido  = errors.New("subtotal no coincide con cantidad × precio unitario")
	ErrVentaNoRegistrada = errors.New("no se pudo registrar la cabecera de la venta")
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrConflictoStock    = errors.New("conflicto concurrente al actualizar stock")
)

// VentaParcialError indica que una venta quedó parcialmente escrita en el
// backend y la compensación no pudo revertirla por completo. Lleva lo que
// alcanzó a confirmarse para que un operador pueda reconciliar a mano.
type VentaParcialError struct {
	IDVenta          int   // cabecera ya creada
	DetallesEscritos []int // idarticulo de las líneas que no se pudieron revertir
	StockDescontado  []int // idarticulo con descuento de stock sin restaurar
	Causa            error // fallo original que disparó la compensación
}

func (e *VentaParcialError) Error() string {
	return fmt.Sprintf(
		"venta %d parcialmente escrita (detalles=%v, stock_descontado=%v): %v",
		e.IDVenta, e.DetallesEscritos, e.StockDescontado, e.Causa,
	)
}

func (e *VentaParcialError) Unwrap() error { return e.Causa }
