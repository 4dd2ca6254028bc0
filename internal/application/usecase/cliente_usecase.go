package usecase

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Create registra un cliente.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*entity.Cliente, error) {
	if in.Nombre == "" || in.Apellidos == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.clienteRepo.Create(ctx, &entity.Cliente{
		Nombre:    in.Nombre,
		Apellidos: in.Apellidos,
		Telefono:  in.Telefono,
		Email:     in.Email,
	})
}

// GetByID devuelve un cliente; (nil, nil) si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int) (*entity.Cliente, error) {
	return uc.clienteRepo.GetByID(ctx, id)
}

// List devuelve todos los clientes.
func (uc *ClienteUseCase) List(ctx context.Context) ([]entity.Cliente, error) {
	return uc.clienteRepo.List(ctx)
}

// Update aplica una actualización parcial.
func (uc *ClienteUseCase) Update(ctx context.Context, id int, in dto.UpdateClienteRequest) (*entity.Cliente, error) {
	cambios := in.Cambios()
	if len(cambios) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.clienteRepo.Update(ctx, id, cambios)
}

// Delete elimina el cliente.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int) error {
	return uc.clienteRepo.Delete(ctx, id)
}
