package repository

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

// CategoriaRepository puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(ctx context.Context, c *entity.Categoria) (*entity.Categoria, error)
	GetByID(ctx context.Context, id int) (*entity.Categoria, error)
	List(ctx context.Context) ([]entity.Categoria, error)
	Update(ctx context.Context, id int, cambios map[string]any) (*entity.Categoria, error)
	Delete(ctx context.Context, id int) error
}

// PresentacionRepository catálogo de presentaciones (solo lectura).
type PresentacionRepository interface {
	List(ctx context.Context) ([]entity.Presentacion, error)
}
