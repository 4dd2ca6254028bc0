package usecase

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorías y catálogo de presentaciones.
type CategoriaUseCase struct {
	categoriaRepo    repository.CategoriaRepository
	presentacionRepo repository.PresentacionRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository, presentacionRepo repository.PresentacionRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo, presentacionRepo: presentacionRepo}
}

// Create registra una categoría; nace con condición activa.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CreateCategoriaRequest) (*entity.Categoria, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.categoriaRepo.Create(ctx, &entity.Categoria{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Condicion:   1,
	})
}

// GetByID devuelve una categoría; (nil, nil) si no existe.
func (uc *CategoriaUseCase) GetByID(ctx context.Context, id int) (*entity.Categoria, error) {
	return uc.categoriaRepo.GetByID(ctx, id)
}

// List devuelve todas las categorías.
func (uc *CategoriaUseCase) List(ctx context.Context) ([]entity.Categoria, error) {
	return uc.categoriaRepo.List(ctx)
}

// Update actualiza nombre y descripción.
func (uc *CategoriaUseCase) Update(ctx context.Context, id int, in dto.CreateCategoriaRequest) (*entity.Categoria, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.categoriaRepo.Update(ctx, id, map[string]any{
		"nombre":      in.Nombre,
		"descripcion": in.Descripcion,
	})
}

// Delete elimina la categoría.
func (uc *CategoriaUseCase) Delete(ctx context.Context, id int) error {
	return uc.categoriaRepo.Delete(ctx, id)
}

// ListPresentaciones catálogo de presentaciones para los formularios de artículo.
func (uc *CategoriaUseCase) ListPresentaciones(ctx context.Context) ([]entity.Presentacion, error) {
	return uc.presentacionRepo.List(ctx)
}
