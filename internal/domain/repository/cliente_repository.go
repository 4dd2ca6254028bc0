package repository

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) (*entity.Cliente, error)
	GetByID(ctx context.Context, id int) (*entity.Cliente, error)
	List(ctx context.Context) ([]entity.Cliente, error)
	Update(ctx context.Context, id int, cambios map[string]any) (*entity.Cliente, error)
	Delete(ctx context.Context, id int) error
}
