package repository

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

// ArticuloRepository define el puerto de persistencia para Articulo (DIP).
type ArticuloRepository interface {
	Create(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error)
	GetByID(ctx context.Context, id int) (*entity.Articulo, error)
	List(ctx context.Context, limit int) ([]entity.Articulo, error)
	// ListVendibles devuelve artículos activos con stock > 0 (catálogo de venta).
	ListVendibles(ctx context.Context) ([]entity.Articulo, error)
	Update(ctx context.Context, id int, cambios map[string]any) (*entity.Articulo, error)
	Delete(ctx context.Context, id int) error
	// GetStock lee solo el stock actual del artículo.
	GetStock(ctx context.Context, id int) (int, error)
	// DecrementarStock aplica stock = observado - cantidad solo si el stock
	// remoto sigue siendo `observado` (actualización condicional). Devuelve
	// false sin error cuando otro proceso ganó la carrera.
	DecrementarStock(ctx context.Context, id, observado, cantidad int) (bool, error)
	// RestaurarStock suma cantidad de vuelta al stock (compensación de venta).
	RestaurarStock(ctx context.Context, id, cantidad int) error
}
