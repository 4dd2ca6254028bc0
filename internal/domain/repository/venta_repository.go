package repository

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

// VentaRepository puerto de persistencia para la cabecera de venta.
type VentaRepository interface {
	// Create inserta la cabecera y devuelve la fila creada (con idventa asignado).
	Create(ctx context.Context, v *entity.Venta) (*entity.Venta, error)
	GetByID(ctx context.Context, id int) (*entity.Venta, error)
	List(ctx context.Context, limit int) ([]entity.Venta, error)
	// ListByFecha devuelve las ventas con fecha_hora en [desde, hasta].
	ListByFecha(ctx context.Context, desde, hasta string) ([]entity.Venta, error)
	// Delete elimina la cabecera; solo se usa como compensación de una venta fallida.
	Delete(ctx context.Context, id int) error
	// MarcarFallida deja la cabecera en estado `fallida` cuando la compensación
	// no pudo eliminarla (queda para reconciliación manual).
	MarcarFallida(ctx context.Context, id int) error
}

// DetalleVentaRepository puerto de persistencia para las líneas de venta.
type DetalleVentaRepository interface {
	Create(ctx context.Context, d *entity.DetalleVenta) (*entity.DetalleVenta, error)
	ListByVenta(ctx context.Context, idVenta int) ([]entity.DetalleVenta, error)
	// DeleteByVenta elimina todas las líneas de una venta (compensación).
	DeleteByVenta(ctx context.Context, idVenta int) error
}
