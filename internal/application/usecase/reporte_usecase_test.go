package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

func TestReporteVentas_CubreDiasCompletos(t *testing.T) {
	ventas := new(ventaRepoMock)
	articulos := new(articuloRepoMock)
	uc := NewReporteUseCase(ventas, articulos)
	ctx := context.Background()

	// El rango se expande a los extremos del día.
	ventas.On("ListByFecha", ctx, "2026-08-01 00:00:00", "2026-08-15 23:59:59").Return([]entity.Venta{
		{IDVenta: 1, TotalVenta: decimal.RequireFromString("10.50")},
		{IDVenta: 2, TotalVenta: decimal.RequireFromString("4.25")},
	}, nil)

	out, err := uc.Ventas(ctx, "2026-08-01", "2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalVentas)
	assert.True(t, out.TotalMonto.Equal(decimal.RequireFromString("14.75")))
	ventas.AssertExpectations(t)
}

func TestReporteVentas_RangoVacio(t *testing.T) {
	uc := NewReporteUseCase(new(ventaRepoMock), new(articuloRepoMock))

	_, err := uc.Ventas(context.Background(), "", "2026-08-15")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReporteInventario_ConteosDeStock(t *testing.T) {
	ventas := new(ventaRepoMock)
	articulos := new(articuloRepoMock)
	uc := NewReporteUseCase(ventas, articulos)
	ctx := context.Background()

	articulos.On("List", ctx, 0).Return([]entity.Articulo{
		{IDArticulo: 1, Stock: 0},
		{IDArticulo: 2, Stock: 3},
		{IDArticulo: 3, Stock: 50},
	}, nil)

	out, err := uc.Inventario(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalArticulos)
	assert.Equal(t, 1, out.SinStock)
	// Sin stock también cuenta como bajo stock.
	assert.Equal(t, 2, out.BajoStock)
}
