package repository

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

// TrabajadorRepository puerto de persistencia para Trabajador (auth).
type TrabajadorRepository interface {
	Create(ctx context.Context, t *entity.Trabajador) (*entity.Trabajador, error)
	GetByID(ctx context.Context, id int) (*entity.Trabajador, error)
	// GetByUsuario busca un trabajador activo por nombre de usuario.
	GetByUsuario(ctx context.Context, usuario string) (*entity.Trabajador, error)
	UpdatePassword(ctx context.Context, id int, hash string) error
	UpdatePerfil(ctx context.Context, id int, cambios map[string]any) error
}
