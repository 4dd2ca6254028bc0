package venta

import (
	"context"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

// ConsultaVentaUseCase lecturas sobre ventas ya registradas.
type ConsultaVentaUseCase struct {
	ventaRepo   repository.VentaRepository
	detalleRepo repository.DetalleVentaRepository
}

// NewConsultaVentaUseCase construye el caso de uso de consulta.
func NewConsultaVentaUseCase(ventaRepo repository.VentaRepository, detalleRepo repository.DetalleVentaRepository) *ConsultaVentaUseCase {
	return &ConsultaVentaUseCase{ventaRepo: ventaRepo, detalleRepo: detalleRepo}
}

// List devuelve las ventas más recientes primero.
func (uc *ConsultaVentaUseCase) List(ctx context.Context, limit int) ([]entity.Venta, error) {
	return uc.ventaRepo.List(ctx, limit)
}

// GetConDetalles devuelve una venta con sus líneas; (nil, nil) si no existe.
func (uc *ConsultaVentaUseCase) GetConDetalles(ctx context.Context, id int) (*dto.VentaConDetallesResponse, error) {
	v, err := uc.ventaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	detalles, err := uc.detalleRepo.ListByVenta(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.VentaConDetallesResponse{Venta: *v, Detalles: detalles}, nil
}
