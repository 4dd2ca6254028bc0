package supabase

import (
	"context"
	"errors"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

const (
	tablaVenta        = "venta"
	tablaDetalleVenta = "detalle_venta"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo adaptador de persistencia para cabeceras de venta.
type VentaRepo struct {
	c *Client
}

// NewVentaRepository construye el adaptador.
func NewVentaRepository(c *Client) *VentaRepo {
	return &VentaRepo{c: c}
}

// Create inserta la cabecera y devuelve la fila creada con su idventa.
func (r *VentaRepo) Create(ctx context.Context, v *entity.Venta) (*entity.Venta, error) {
	res, err := r.c.Execute(ctx, Table(tablaVenta).Insert(v))
	if err != nil {
		return nil, err
	}
	var creada entity.Venta
	if err := res.One(&creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

// GetByID obtiene una venta; (nil, nil) si no existe.
func (r *VentaRepo) GetByID(ctx context.Context, id int) (*entity.Venta, error) {
	res, err := r.c.Execute(ctx, Table(tablaVenta).Eq("idventa", id).Single())
	if err != nil {
		return nil, err
	}
	var v entity.Venta
	if err := res.Decode(&v); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// List devuelve ventas ordenadas por id descendente.
func (r *VentaRepo) List(ctx context.Context, limit int) ([]entity.Venta, error) {
	q := Table(tablaVenta).OrderDesc("idventa")
	if limit > 0 {
		q = q.Limit(limit)
	}
	res, err := r.c.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	var ventas []entity.Venta
	if err := res.All(&ventas); err != nil {
		return nil, err
	}
	return ventas, nil
}

// ListByFecha devuelve las ventas con fecha_hora dentro del rango [desde, hasta].
func (r *VentaRepo) ListByFecha(ctx context.Context, desde, hasta string) ([]entity.Venta, error) {
	res, err := r.c.Execute(ctx, Table(tablaVenta).
		Gte("fecha_hora", desde).
		Lte("fecha_hora", hasta).
		OrderDesc("fecha_hora"))
	if err != nil {
		return nil, err
	}
	var ventas []entity.Venta
	if err := res.All(&ventas); err != nil {
		return nil, err
	}
	return ventas, nil
}

// Delete elimina la cabecera (compensación de una venta fallida).
func (r *VentaRepo) Delete(ctx context.Context, id int) error {
	_, err := r.c.Execute(ctx, Table(tablaVenta).Eq("idventa", id).Delete())
	return err
}

// MarcarFallida deja la cabecera en estado `fallida` para reconciliación manual.
func (r *VentaRepo) MarcarFallida(ctx context.Context, id int) error {
	_, err := r.c.Execute(ctx, Table(tablaVenta).
		Eq("idventa", id).
		Update(map[string]any{"estado": entity.VentaFallida}))
	return err
}

var _ repository.DetalleVentaRepository = (*DetalleVentaRepo)(nil)

// DetalleVentaRepo adaptador de persistencia para líneas de venta.
type DetalleVentaRepo struct {
	c *Client
}

// NewDetalleVentaRepository construye el adaptador.
func NewDetalleVentaRepository(c *Client) *DetalleVentaRepo {
	return &DetalleVentaRepo{c: c}
}

// Create inserta una línea de venta y devuelve la fila creada.
func (r *DetalleVentaRepo) Create(ctx context.Context, d *entity.DetalleVenta) (*entity.DetalleVenta, error) {
	res, err := r.c.Execute(ctx, Table(tablaDetalleVenta).Insert(d))
	if err != nil {
		return nil, err
	}
	var creado entity.DetalleVenta
	if err := res.One(&creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// ListByVenta devuelve las líneas de una venta.
func (r *DetalleVentaRepo) ListByVenta(ctx context.Context, idVenta int) ([]entity.DetalleVenta, error) {
	res, err := r.c.Execute(ctx, Table(tablaDetalleVenta).Eq("idventa", idVenta))
	if err != nil {
		return nil, err
	}
	var detalles []entity.DetalleVenta
	if err := res.All(&detalles); err != nil {
		return nil, err
	}
	return detalles, nil
}

// DeleteByVenta elimina todas las líneas de una venta (compensación).
func (r *DetalleVentaRepo) DeleteByVenta(ctx context.Context, idVenta int) error {
	_, err := r.c.Execute(ctx, Table(tablaDetalleVenta).Eq("idventa", idVenta).Delete())
	return err
}
