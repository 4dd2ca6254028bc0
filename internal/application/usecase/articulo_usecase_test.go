package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

func TestArticuloCreate_NaceActivo(t *testing.T) {
	repo := new(articuloRepoMock)
	uc := NewArticuloUseCase(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(a *entity.Articulo) bool {
		return a.Codigo == "PARA500" && a.Estado == entity.EstadoActivo
	})).Return(&entity.Articulo{IDArticulo: 1, Codigo: "PARA500"}, nil)

	out, err := uc.Create(ctx, dto.CreateArticuloRequest{
		Codigo:      "PARA500",
		Nombre:      "Paracetamol 500mg",
		Stock:       100,
		PrecioVenta: decimal.RequireFromString("2.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.IDArticulo)
	repo.AssertExpectations(t)
}

func TestArticuloCreate_RechazaDatosInvalidos(t *testing.T) {
	repo := new(articuloRepoMock)
	uc := NewArticuloUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateArticuloRequest{Nombre: "sin codigo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateArticuloRequest{Codigo: "X", Nombre: "stock negativo", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestArticuloUpdate_StockNegativoRechazado(t *testing.T) {
	repo := new(articuloRepoMock)
	uc := NewArticuloUseCase(repo)

	negativo := -5
	_, err := uc.Update(context.Background(), 1, dto.UpdateArticuloRequest{Stock: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestArticuloUpdate_SoloCamposPresentes(t *testing.T) {
	repo := new(articuloRepoMock)
	uc := NewArticuloUseCase(repo)
	ctx := context.Background()

	nombre := "Ibuprofeno 400mg"
	stock := 30
	repo.On("Update", ctx, 1, map[string]any{
		"nombre": nombre,
		"stock":  stock,
	}).Return(&entity.Articulo{IDArticulo: 1, Nombre: nombre, Stock: stock}, nil)

	out, err := uc.Update(ctx, 1, dto.UpdateArticuloRequest{Nombre: &nombre, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, nombre, out.Nombre)
	repo.AssertExpectations(t)
}

func TestArticuloUpdate_SinCambios(t *testing.T) {
	repo := new(articuloRepoMock)
	uc := NewArticuloUseCase(repo)

	_, err := uc.Update(context.Background(), 1, dto.UpdateArticuloRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
