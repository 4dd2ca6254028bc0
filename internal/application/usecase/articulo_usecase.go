package usecase

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

// ArticuloUseCase CRUD de artículos del inventario.
type ArticuloUseCase struct {
	articuloRepo repository.ArticuloRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(articuloRepo repository.ArticuloRepository) *ArticuloUseCase {
	return &ArticuloUseCase{articuloRepo: articuloRepo}
}

// Create da de alta un artículo; nace activo si no se indica lo contrario.
func (uc *ArticuloUseCase) Create(ctx context.Context, in dto.CreateArticuloRequest) (*entity.Articulo, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.articuloRepo.Create(ctx, &entity.Articulo{
		Codigo:           in.Codigo,
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		IDCategoria:      in.IDCategoria,
		IDPresentacion:   in.IDPresentacion,
		Stock:            in.Stock,
		PrecioVenta:      in.PrecioVenta,
		FechaVencimiento: in.FechaVencimiento,
		Estado:           entity.EstadoActivo,
		TipoVenta:        in.TipoVenta,
	})
}

// GetByID devuelve un artículo; (nil, nil) si no existe.
func (uc *ArticuloUseCase) GetByID(ctx context.Context, id int) (*entity.Articulo, error) {
	return uc.articuloRepo.GetByID(ctx, id)
}

// List devuelve los artículos más recientes primero.
func (uc *ArticuloUseCase) List(ctx context.Context, limit int) ([]entity.Articulo, error) {
	return uc.articuloRepo.List(ctx, limit)
}

// ListVendibles devuelve artículos activos con stock disponible (catálogo de venta).
func (uc *ArticuloUseCase) ListVendibles(ctx context.Context) ([]entity.Articulo, error) {
	return uc.articuloRepo.ListVendibles(ctx)
}

// Update aplica una actualización parcial; el stock no puede quedar negativo.
func (uc *ArticuloUseCase) Update(ctx context.Context, id int, in dto.UpdateArticuloRequest) (*entity.Articulo, error) {
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	cambios := in.Cambios()
	if len(cambios) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.articuloRepo.Update(ctx, id, cambios)
}

// Delete elimina el artículo.
func (uc *ArticuloUseCase) Delete(ctx context.Context, id int) error {
	return uc.articuloRepo.Delete(ctx, id)
}
