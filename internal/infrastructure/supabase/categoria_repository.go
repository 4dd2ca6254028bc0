package supabase

import (
	"context"
	"errors"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

const (
	tablaCategoria    = "categoria"
	tablaPresentacion = "presentacion"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo adaptador de persistencia para categorías.
type CategoriaRepo struct {
	c *Client
}

// NewCategoriaRepository construye el adaptador.
func NewCategoriaRepository(c *Client) *CategoriaRepo {
	return &CategoriaRepo{c: c}
}

// Create registra una categoría y devuelve la fila creada.
func (r *CategoriaRepo) Create(ctx context.Context, cat *entity.Categoria) (*entity.Categoria, error) {
	res, err := r.c.Execute(ctx, Table(tablaCategoria).Insert(cat))
	if err != nil {
		return nil, err
	}
	var creada entity.Categoria
	if err := res.One(&creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

// GetByID obtiene una categoría; (nil, nil) si no existe.
func (r *CategoriaRepo) GetByID(ctx context.Context, id int) (*entity.Categoria, error) {
	res, err := r.c.Execute(ctx, Table(tablaCategoria).Eq("idcategoria", id).Single())
	if err != nil {
		return nil, err
	}
	var cat entity.Categoria
	if err := res.Decode(&cat); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// List devuelve todas las categorías, más recientes primero.
func (r *CategoriaRepo) List(ctx context.Context) ([]entity.Categoria, error) {
	res, err := r.c.Execute(ctx, Table(tablaCategoria).OrderDesc("idcategoria"))
	if err != nil {
		return nil, err
	}
	var categorias []entity.Categoria
	if err := res.All(&categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

// Update aplica cambios parciales; (nil, nil) si la categoría no existe.
func (r *CategoriaRepo) Update(ctx context.Context, id int, cambios map[string]any) (*entity.Categoria, error) {
	res, err := r.c.Execute(ctx, Table(tablaCategoria).Eq("idcategoria", id).Update(cambios))
	if err != nil {
		return nil, err
	}
	var cat entity.Categoria
	if err := res.One(&cat); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// Delete elimina la categoría.
func (r *CategoriaRepo) Delete(ctx context.Context, id int) error {
	_, err := r.c.Execute(ctx, Table(tablaCategoria).Eq("idcategoria", id).Delete())
	return err
}

var _ repository.PresentacionRepository = (*PresentacionRepo)(nil)

// PresentacionRepo catálogo de presentaciones (solo lectura).
type PresentacionRepo struct {
	c *Client
}

// NewPresentacionRepository construye el adaptador.
func NewPresentacionRepository(c *Client) *PresentacionRepo {
	return &PresentacionRepo{c: c}
}

// List devuelve todas las presentaciones.
func (r *PresentacionRepo) List(ctx context.Context) ([]entity.Presentacion, error) {
	res, err := r.c.Execute(ctx, Table(tablaPresentacion).Order("idpresentacion"))
	if err != nil {
		return nil, err
	}
	var presentaciones []entity.Presentacion
	if err := res.All(&presentaciones); err != nil {
		return nil, err
	}
	return presentaciones, nil
}
