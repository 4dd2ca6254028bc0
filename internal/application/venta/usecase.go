package venta

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/pkg/logger"
)

// maxIntentosDescuento reintentos de la escritura condicional de stock antes
// de declarar conflicto.
const maxIntentosDescuento = 3

// RegistrarVentaUseCase coordina una venta completa contra el backend:
// valida los items, crea la cabecera, escribe cada línea y descuenta stock.
// Los pasos son llamadas de red independientes sin transacción del lado del
// servidor, así que el caso de uso compensa lo ya escrito cuando un paso
// intermedio falla (saga con compensación).
type RegistrarVentaUseCase struct {
	ventaRepo    repository.VentaRepository
	detalleRepo  repository.DetalleVentaRepository
	articuloRepo repository.ArticuloRepository
	log          *logger.Logger
}

// NewRegistrarVentaUseCase construye el caso de uso.
func NewRegistrarVentaUseCase(
	ventaRepo repository.VentaRepository,
	detalleRepo repository.DetalleVentaRepository,
	articuloRepo repository.ArticuloRepository,
	log *logger.Logger,
) *RegistrarVentaUseCase {
	return &RegistrarVentaUseCase{
		ventaRepo:    ventaRepo,
		detalleRepo:  detalleRepo,
		articuloRepo: articuloRepo,
		log:          log,
	}
}

// descuento registra un descuento de stock ya aplicado, para poder revertirlo.
type descuento struct {
	idArticulo int
	cantidad   int
}

// Registrar ejecuta la venta. Valida antes de escribir nada: con items vacíos
// o subtotales inconsistentes no se toca el backend. El descuento de stock es
// una escritura condicional sobre el valor observado, con reintentos; el
// stock nunca queda negativo y una venta concurrente pierde la carrera de
// forma explícita en lugar de pisar el descuento ajeno.
func (uc *RegistrarVentaUseCase) Registrar(ctx context.Context, idTrabajador int, in dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
	// validating
	if len(in.Items) == 0 {
		return nil, domain.ErrVentaVacia
	}
	total := decimal.Zero
	for _, item := range in.Items {
		if item.IDArticulo <= 0 || item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		esperado := item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		if !item.Subtotal.Equal(esperado) {
			return nil, domain.ErrSubtotalInvalido
		}
		total = total.Add(item.Subtotal)
	}

	// creating_header
	cabecera, err := uc.ventaRepo.Create(ctx, &entity.Venta{
		IDCliente:    in.IDCliente,
		IDTrabajador: idTrabajador,
		TotalVenta:   total,
		Estado:       entity.VentaCompletada,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cabecera de venta: %w", err)
	}
	if cabecera == nil || cabecera.IDVenta == 0 {
		return nil, domain.ErrVentaNoRegistrada
	}
	idVenta := cabecera.IDVenta

	// writing_lines / decrementing_stock, intercalados por item en orden de entrada
	var escritos []int
	var descuentos []descuento
	for _, item := range in.Items {
		if _, err := uc.detalleRepo.Create(ctx, &entity.DetalleVenta{
			IDVenta:        idVenta,
			IDArticulo:     item.IDArticulo,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		}); err != nil {
			return nil, uc.compensar(ctx, idVenta, escritos, descuentos,
				fmt.Errorf("crear detalle para articulo %d: %w", item.IDArticulo, err))
		}
		escritos = append(escritos, item.IDArticulo)

		if err := uc.descontarStock(ctx, item.IDArticulo, item.Cantidad); err != nil {
			return nil, uc.compensar(ctx, idVenta, escritos, descuentos, err)
		}
		descuentos = append(descuentos, descuento{idArticulo: item.IDArticulo, cantidad: item.Cantidad})
	}

	// done
	uc.log.Info().
		Int("idventa", idVenta).
		Int("items", len(in.Items)).
		Str("total", total.String()).
		Msg("venta registrada")

	return &dto.RegistrarVentaResponse{IDVenta: idVenta, Total: total}, nil
}

// descontarStock aplica stock -= cantidad con concurrencia optimista: lee el
// stock, escribe condicionado al valor leído y reintenta si otro proceso
// ganó la carrera. Un artículo inexistente hace fallar la venta completa
// (política única para todos los caminos de entrada); el stock jamás baja de
// cero: si no alcanza, la línea falla con ErrStockInsuficiente.
func (uc *RegistrarVentaUseCase) descontarStock(ctx context.Context, idArticulo, cantidad int) error {
	for intento := 0; intento < maxIntentosDescuento; intento++ {
		actual, err := uc.articuloRepo.GetStock(ctx, idArticulo)
		if err != nil {
			return fmt.Errorf("leer stock del articulo %d: %w", idArticulo, err)
		}
		if actual < cantidad {
			return fmt.Errorf("articulo %d: %w", idArticulo, domain.ErrStockInsuficiente)
		}
		aplicado, err := uc.articuloRepo.DecrementarStock(ctx, idArticulo, actual, cantidad)
		if err != nil {
			return fmt.Errorf("descontar stock del articulo %d: %w", idArticulo, err)
		}
		if aplicado {
			return nil
		}
		uc.log.Warn().
			Int("idarticulo", idArticulo).
			Int("intento", intento+1).
			Msg("descuento de stock perdió la carrera, reintentando")
	}
	return fmt.Errorf("articulo %d: %w", idArticulo, domain.ErrConflictoStock)
}

// compensar revierte lo ya confirmado: restaura los descuentos de stock,
// borra las líneas escritas y elimina la cabecera. Si toda la compensación
// funciona, devuelve la causa original (la venta falló sin dejar rastro).
// Si algún paso de la compensación también falla, devuelve VentaParcialError
// con lo que quedó escrito para reconciliación manual.
func (uc *RegistrarVentaUseCase) compensar(ctx context.Context, idVenta int, escritos []int, descuentos []descuento, causa error) error {
	uc.log.Warn().
		Int("idventa", idVenta).
		Err(causa).
		Msg("venta fallida tras crear la cabecera, compensando")

	parcial := &domain.VentaParcialError{IDVenta: idVenta, Causa: causa}

	for _, d := range descuentos {
		if err := uc.articuloRepo.RestaurarStock(ctx, d.idArticulo, d.cantidad); err != nil {
			uc.log.Error().
				Int("idarticulo", d.idArticulo).
				Err(err).
				Msg("no se pudo restaurar stock en la compensación")
			parcial.StockDescontado = append(parcial.StockDescontado, d.idArticulo)
		}
	}

	if len(escritos) > 0 {
		if err := uc.detalleRepo.DeleteByVenta(ctx, idVenta); err != nil {
			uc.log.Error().
				Int("idventa", idVenta).
				Err(err).
				Msg("no se pudieron eliminar los detalles en la compensación")
			parcial.DetallesEscritos = escritos
		}
	}

	// La cabecera solo se elimina si no quedó nada colgando de ella; si quedó
	// algo, se marca fallida para que el operador la encuentre.
	if len(parcial.StockDescontado) == 0 && len(parcial.DetallesEscritos) == 0 {
		if err := uc.ventaRepo.Delete(ctx, idVenta); err == nil {
			return causa
		}
		uc.log.Error().Int("idventa", idVenta).Msg("no se pudo eliminar la cabecera en la compensación")
	}

	if err := uc.ventaRepo.MarcarFallida(ctx, idVenta); err != nil {
		uc.log.Error().Int("idventa", idVenta).Err(err).Msg("no se pudo marcar la venta como fallida")
	}
	return parcial
}
