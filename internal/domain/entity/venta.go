package entity

import "github.com/shopspring/decimal"

// Estados de una venta. Las ventas nacen completadas; `fallida` solo aparece
// si la compensación de una venta parcial no pudo eliminar la cabecera.
const (
	VentaCompletada = "completada"
	VentaFallida    = "fallida"
)

// Venta cabecera de una venta (tabla remota `venta`).
// TotalVenta debe ser igual a la suma de los subtotales de sus detalles.
type Venta struct {
	IDVenta      int             `json:"idventa,omitempty"`
	IDCliente    int             `json:"idcliente"`
	IDTrabajador int             `json:"idtrabajador"`
	TotalVenta   decimal.Decimal `json:"total_venta"`
	Estado       string          `json:"estado"`
	FechaHora    string          `json:"fecha_hora,omitempty"`
}

// DetalleVenta línea de una venta (tabla remota `detalle_venta`).
// Subtotal = Cantidad × PrecioUnitario; se crea solo como parte de una venta.
type DetalleVenta struct {
	IDDetalle      int             `json:"iddetalle,omitempty"`
	IDVenta        int             `json:"idventa"`
	IDArticulo     int             `json:"idarticulo"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}
