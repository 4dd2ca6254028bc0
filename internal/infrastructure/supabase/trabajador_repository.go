package supabase

import (
	"context"
	"errors"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

const tablaTrabajador = "trabajador"

var _ repository.TrabajadorRepository = (*TrabajadorRepo)(nil)

// TrabajadorRepo adaptador de persistencia para trabajadores.
type TrabajadorRepo struct {
	c *Client
}

// NewTrabajadorRepository construye el adaptador.
func NewTrabajadorRepository(c *Client) *TrabajadorRepo {
	return &TrabajadorRepo{c: c}
}

// Create registra un trabajador y devuelve la fila creada.
func (r *TrabajadorRepo) Create(ctx context.Context, t *entity.Trabajador) (*entity.Trabajador, error) {
	res, err := r.c.Execute(ctx, Table(tablaTrabajador).Insert(t))
	if err != nil {
		return nil, err
	}
	var creado entity.Trabajador
	if err := res.One(&creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// GetByID obtiene un trabajador; (nil, nil) si no existe.
func (r *TrabajadorRepo) GetByID(ctx context.Context, id int) (*entity.Trabajador, error) {
	res, err := r.c.Execute(ctx, Table(tablaTrabajador).Eq("idtrabajador", id).Single())
	if err != nil {
		return nil, err
	}
	var t entity.Trabajador
	if err := res.Decode(&t); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// GetByUsuario busca un trabajador activo por usuario; (nil, nil) si no existe.
func (r *TrabajadorRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Trabajador, error) {
	res, err := r.c.Execute(ctx, Table(tablaTrabajador).
		Eq("usuario", usuario).
		Eq("estado", entity.EstadoActivo).
		Single())
	if err != nil {
		return nil, err
	}
	var t entity.Trabajador
	if err := res.Decode(&t); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// UpdatePassword reemplaza el hash de contraseña del trabajador.
func (r *TrabajadorRepo) UpdatePassword(ctx context.Context, id int, hash string) error {
	_, err := r.c.Execute(ctx, Table(tablaTrabajador).
		Eq("idtrabajador", id).
		Update(map[string]any{"password": hash}))
	return err
}

// UpdatePerfil aplica cambios parciales al perfil (nombre, apellidos...).
func (r *TrabajadorRepo) UpdatePerfil(ctx context.Context, id int, cambios map[string]any) error {
	_, err := r.c.Execute(ctx, Table(tablaTrabajador).
		Eq("idtrabajador", id).
		Update(cambios))
	return err
}
