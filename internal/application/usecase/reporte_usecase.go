package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
)

// umbralBajoStock artículos con stock por debajo de este valor se reportan
// como bajo stock.
const umbralBajoStock = 10

// ReporteUseCase reportes de ventas por rango de fechas y de inventario.
type ReporteUseCase struct {
	ventaRepo    repository.VentaRepository
	articuloRepo repository.ArticuloRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(ventaRepo repository.VentaRepository, articuloRepo repository.ArticuloRepository) *ReporteUseCase {
	return &ReporteUseCase{ventaRepo: ventaRepo, articuloRepo: articuloRepo}
}

// Ventas devuelve las ventas del rango [desde, hasta] (fechas YYYY-MM-DD)
// con el conteo y el monto acumulado. El rango cubre los días completos.
func (uc *ReporteUseCase) Ventas(ctx context.Context, desde, hasta string) (*dto.ReporteVentasResponse, error) {
	if desde == "" || hasta == "" {
		return nil, domain.ErrInvalidInput
	}
	ventas, err := uc.ventaRepo.ListByFecha(ctx, desde+" 00:00:00", hasta+" 23:59:59")
	if err != nil {
		return nil, err
	}
	monto := decimal.Zero
	for _, v := range ventas {
		monto = monto.Add(v.TotalVenta)
	}
	return &dto.ReporteVentasResponse{
		Desde:       desde,
		Hasta:       hasta,
		TotalVentas: len(ventas),
		TotalMonto:  monto,
		Ventas:      ventas,
	}, nil
}

// Inventario devuelve el estado del inventario con conteos de bajo stock y
// sin stock.
func (uc *ReporteUseCase) Inventario(ctx context.Context) (*dto.ReporteInventarioResponse, error) {
	articulos, err := uc.articuloRepo.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReporteInventarioResponse{
		TotalArticulos: len(articulos),
		Articulos:      articulos,
	}
	for _, a := range articulos {
		if a.Stock == 0 {
			resp.SinStock++
		}
		if a.Stock < umbralBajoStock {
			resp.BajoStock++
		}
	}
	return resp, nil
}
