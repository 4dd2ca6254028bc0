package supabase

import (
	"context"
	"errors"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

const tablaArticulo = "articulo"

// maxIntentosStock límite de reintentos de la escritura condicional de stock.
const maxIntentosStock = 3

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo adaptador de persistencia para artículos sobre PostgREST.
type ArticuloRepo struct {
	c *Client
}

// NewArticuloRepository construye el adaptador.
func NewArticuloRepository(c *Client) *ArticuloRepo {
	return &ArticuloRepo{c: c}
}

// Create inserta el artículo y devuelve la fila creada (con id asignado).
func (r *ArticuloRepo) Create(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	res, err := r.c.Execute(ctx, Table(tablaArticulo).Insert(a))
	if err != nil {
		return nil, err
	}
	var creado entity.Articulo
	if err := res.One(&creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// GetByID obtiene un artículo; (nil, nil) si no existe.
func (r *ArticuloRepo) GetByID(ctx context.Context, id int) (*entity.Articulo, error) {
	res, err := r.c.Execute(ctx, Table(tablaArticulo).Eq("idarticulo", id).Single())
	if err != nil {
		return nil, err
	}
	var a entity.Articulo
	if err := res.Decode(&a); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// List devuelve artículos ordenados por id descendente.
func (r *ArticuloRepo) List(ctx context.Context, limit int) ([]entity.Articulo, error) {
	q := Table(tablaArticulo).OrderDesc("idarticulo")
	if limit > 0 {
		q = q.Limit(limit)
	}
	res, err := r.c.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	var articulos []entity.Articulo
	if err := res.All(&articulos); err != nil {
		return nil, err
	}
	return articulos, nil
}

// ListVendibles devuelve los artículos activos con stock > 0.
func (r *ArticuloRepo) ListVendibles(ctx context.Context) ([]entity.Articulo, error) {
	res, err := r.c.Execute(ctx, Table(tablaArticulo).
		Eq("estado", entity.EstadoActivo).
		Gt("stock", 0).
		Order("nombre"))
	if err != nil {
		return nil, err
	}
	var articulos []entity.Articulo
	if err := res.All(&articulos); err != nil {
		return nil, err
	}
	return articulos, nil
}

// Update aplica cambios parciales; (nil, nil) si el artículo no existe.
func (r *ArticuloRepo) Update(ctx context.Context, id int, cambios map[string]any) (*entity.Articulo, error) {
	res, err := r.c.Execute(ctx, Table(tablaArticulo).Eq("idarticulo", id).Update(cambios))
	if err != nil {
		return nil, err
	}
	var a entity.Articulo
	if err := res.One(&a); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Delete elimina el artículo.
func (r *ArticuloRepo) Delete(ctx context.Context, id int) error {
	_, err := r.c.Execute(ctx, Table(tablaArticulo).Eq("idarticulo", id).Delete())
	return err
}

// GetStock lee solo el stock actual; domain.ErrNotFound si el artículo no existe.
func (r *ArticuloRepo) GetStock(ctx context.Context, id int) (int, error) {
	res, err := r.c.Execute(ctx, Table(tablaArticulo).
		Select("stock").
		Eq("idarticulo", id).
		Single())
	if err != nil {
		return 0, err
	}
	var fila struct {
		Stock int `json:"stock"`
	}
	if err := res.Decode(&fila); err != nil {
		if errors.Is(err, ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return fila.Stock, nil
}

// DecrementarStock escribe stock = observado - cantidad condicionado a que el
// stock remoto siga siendo `observado`. El filtro extra sobre la columna
// stock convierte el read-modify-write en una escritura condicional: si otro
// proceso descontó primero, el PATCH no afecta filas y se devuelve false.
func (r *ArticuloRepo) DecrementarStock(ctx context.Context, id, observado, cantidad int) (bool, error) {
	res, err := r.c.Execute(ctx, Table(tablaArticulo).
		Eq("idarticulo", id).
		Eq("stock", observado).
		Update(map[string]any{"stock": observado - cantidad}))
	if err != nil {
		return false, err
	}
	n, err := res.Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RestaurarStock suma cantidad de vuelta (compensación). Reintenta la
// escritura condicional un número acotado de veces.
func (r *ArticuloRepo) RestaurarStock(ctx context.Context, id, cantidad int) error {
	for intento := 0; intento < maxIntentosStock; intento++ {
		actual, err := r.GetStock(ctx, id)
		if err != nil {
			return err
		}
		aplicado, err := r.DecrementarStock(ctx, id, actual, -cantidad)
		if err != nil {
			return err
		}
		if aplicado {
			return nil
		}
	}
	return domain.ErrConflictoStock
}
