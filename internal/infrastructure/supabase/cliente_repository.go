package supabase

import (
	"context"
	"errors"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

const tablaCliente = "cliente"

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo adaptador de persistencia para clientes.
type ClienteRepo struct {
	c *Client
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(c *Client) *ClienteRepo {
	return &ClienteRepo{c: c}
}

// Create registra un cliente y devuelve la fila creada.
func (r *ClienteRepo) Create(ctx context.Context, cl *entity.Cliente) (*entity.Cliente, error) {
	res, err := r.c.Execute(ctx, Table(tablaCliente).Insert(cl))
	if err != nil {
		return nil, err
	}
	var creado entity.Cliente
	if err := res.One(&creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// GetByID obtiene un cliente; (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int) (*entity.Cliente, error) {
	res, err := r.c.Execute(ctx, Table(tablaCliente).Eq("idcliente", id).Single())
	if err != nil {
		return nil, err
	}
	var cl entity.Cliente
	if err := res.Decode(&cl); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cl, nil
}

// List devuelve todos los clientes, más recientes primero.
func (r *ClienteRepo) List(ctx context.Context) ([]entity.Cliente, error) {
	res, err := r.c.Execute(ctx, Table(tablaCliente).OrderDesc("idcliente"))
	if err != nil {
		return nil, err
	}
	var clientes []entity.Cliente
	if err := res.All(&clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

// Update aplica cambios parciales; (nil, nil) si el cliente no existe.
func (r *ClienteRepo) Update(ctx context.Context, id int, cambios map[string]any) (*entity.Cliente, error) {
	res, err := r.c.Execute(ctx, Table(tablaCliente).Eq("idcliente", id).Update(cambios))
	if err != nil {
		return nil, err
	}
	var cl entity.Cliente
	if err := res.One(&cl); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cl, nil
}

// Delete elimina el cliente.
func (r *ClienteRepo) Delete(ctx context.Context, id int) error {
	_, err := r.c.Execute(ctx, Table(tablaCliente).Eq("idcliente", id).Delete())
	return err
}
