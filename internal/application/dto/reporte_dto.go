package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

// ReporteVentasResponse ventas de un rango de fechas con sus agregados.
type ReporteVentasResponse struct {
	Desde       string          `json:"desde"`
	Hasta       string          `json:"hasta"`
	TotalVentas int             `json:"total_ventas"`
	TotalMonto  decimal.Decimal `json:"total_monto"`
	Ventas      []entity.Venta  `json:"ventas"`
}

// ReporteInventarioResponse resumen del estado del inventario.
type ReporteInventarioResponse struct {
	TotalArticulos int               `json:"total_articulos"`
	BajoStock      int               `json:"bajo_stock"` // stock < 10
	SinStock       int               `json:"sin_stock"`
	Articulos      []entity.Articulo `json:"articulos"`
}
