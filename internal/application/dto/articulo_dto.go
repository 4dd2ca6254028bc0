package dto

import "github.com/shopspring/decimal"

// CreateArticuloRequest entrada para crear un artículo.
type CreateArticuloRequest struct {
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	IDCategoria      int             `json:"idcategoria"`
	IDPresentacion   int             `json:"idpresentacion"`
	Stock            int             `json:"stock"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	TipoVenta        string          `json:"tipo_venta"`
}

// UpdateArticuloRequest actualización parcial de un artículo; solo los campos
// presentes se envían al backend.
type UpdateArticuloRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Stock       *int             `json:"stock"`
	PrecioVenta *decimal.Decimal `json:"precio_venta"`
	Estado      *string          `json:"estado"`
}

// Cambios traduce los campos presentes a un mapa columna → valor.
func (r UpdateArticuloRequest) Cambios() map[string]any {
	cambios := make(map[string]any)
	if r.Nombre != nil {
		cambios["nombre"] = *r.Nombre
	}
	if r.Descripcion != nil {
		cambios["descripcion"] = *r.Descripcion
	}
	if r.Stock != nil {
		cambios["stock"] = *r.Stock
	}
	if r.PrecioVenta != nil {
		cambios["precio_venta"] = *r.PrecioVenta
	}
	if r.Estado != nil {
		cambios["estado"] = *r.Estado
	}
	return cambios
}
