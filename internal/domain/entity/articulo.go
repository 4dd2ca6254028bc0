package entity

import "github.com/shopspring/decimal"

// Estados válidos de un artículo.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Articulo representa un producto del inventario de la farmacia.
// Los tags JSON corresponden a las columnas de la tabla remota `articulo`.
type Articulo struct {
	IDArticulo       int             `json:"idarticulo,omitempty"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion,omitempty"`
	IDCategoria      int             `json:"idcategoria,omitempty"`
	IDPresentacion   int             `json:"idpresentacion,omitempty"`
	Stock            int             `json:"stock"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	FechaVencimiento string          `json:"fecha_vencimiento,omitempty"`
	Estado           string          `json:"estado"`
	TipoVenta        string          `json:"tipo_venta,omitempty"`
}
