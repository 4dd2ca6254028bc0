package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

// ItemVentaRequest línea de una venta entrante. El subtotal lo manda el
// caller pero el caso de uso lo valida contra cantidad × precio unitario.
type ItemVentaRequest struct {
	IDArticulo     int             `json:"idarticulo"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// RegistrarVentaRequest entrada para registrar una venta.
type RegistrarVentaRequest struct {
	IDCliente int                `json:"idcliente"`
	Items     []ItemVentaRequest `json:"items"`
}

// RegistrarVentaResponse salida tras registrar la venta.
type RegistrarVentaResponse struct {
	IDVenta int             `json:"idventa"`
	Total   decimal.Decimal `json:"total"`
}

// VentaConDetallesResponse una venta con sus líneas.
type VentaConDetallesResponse struct {
	Venta    entity.Venta          `json:"venta"`
	Detalles []entity.DetalleVenta `json:"detalles"`
}
