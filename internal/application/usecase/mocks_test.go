package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
)

type articuloRepoMock struct{ mock.Mock }

func (m *articuloRepoMock) Create(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Articulo), args.Error(1)
}

func (m *articuloRepoMock) GetByID(ctx context.Context, id int) (*entity.Articulo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Articulo), args.Error(1)
}

func (m *articuloRepoMock) List(ctx context.Context, limit int) ([]entity.Articulo, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Articulo), args.Error(1)
}

func (m *articuloRepoMock) ListVendibles(ctx context.Context) ([]entity.Articulo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Articulo), args.Error(1)
}

func (m *articuloRepoMock) Update(ctx context.Context, id int, cambios map[string]any) (*entity.Articulo, error) {
	args := m.Called(ctx, id, cambios)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Articulo), args.Error(1)
}

func (m *articuloRepoMock) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *articuloRepoMock) GetStock(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *articuloRepoMock) DecrementarStock(ctx context.Context, id, observado, cantidad int) (bool, error) {
	args := m.Called(ctx, id, observado, cantidad)
	return args.Bool(0), args.Error(1)
}

func (m *articuloRepoMock) RestaurarStock(ctx context.Context, id, cantidad int) error {
	return m.Called(ctx, id, cantidad).Error(0)
}

type ventaRepoMock struct{ mock.Mock }

func (m *ventaRepoMock) Create(ctx context.Context, v *entity.Venta) (*entity.Venta, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venta), args.Error(1)
}

func (m *ventaRepoMock) GetByID(ctx context.Context, id int) (*entity.Venta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venta), args.Error(1)
}

func (m *ventaRepoMock) List(ctx context.Context, limit int) ([]entity.Venta, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Venta), args.Error(1)
}

func (m *ventaRepoMock) ListByFecha(ctx context.Context, desde, hasta string) ([]entity.Venta, error) {
	args := m.Called(ctx, desde, hasta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Venta), args.Error(1)
}

func (m *ventaRepoMock) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ventaRepoMock) MarcarFallida(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
