package service

import (
	"context"
	"errors"
	"time"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService struct {
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
	clientes  repository.ClienteRepository

	notificador     NotificadorStockBajo
	stockBajoLimite int
	log             zerolog.Logger
}

func NewVentaService(
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	notificador NotificadorStockBajo,
	stockBajoLimite int,
	log zerolog.Logger,
) *VentaService {
	return &VentaService{
		ventas:          ventas,
		productos:       productos,
		clientes:        clientes,
		notificador:     notificador,
		stockBajoLimite: stockBajoLimite,
		log:             log,
	}
}

// Registrar creates the sale, decrements stock and writes one salida
// movement per line, all in one transaction. The stock guard runs inside
// the transaction, so a concurrent sale can still surface
// ErrStockInsuficiente even after the pre-check passes.
func (s *VentaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*model.VentaLocal, error) {
	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		id, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, ErrClienteNoEncontrado
		}
		if _, err := s.clientes.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClienteNoEncontrado
			}
			return nil, err
		}
		clienteID = &id
	}

	total := decimal.Zero
	detalles := make([]model.DetalleVentaLocal, 0, len(req.Detalles))
	movs := make([]model.MovimientoStock, 0, len(req.Detalles))
	stockRestante := make(map[uuid.UUID]int, len(req.Detalles))
	nombres := make(map[uuid.UUID]string, len(req.Detalles))

	for _, det := range req.Detalles {
		productoID, err := uuid.Parse(det.ProductoID)
		if err != nil {
			return nil, ErrProductoNoEncontrado
		}
		p, err := s.productos.FindByID(ctx, productoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductoNoEncontrado
			}
			return nil, err
		}
		if p.StockActual < det.Cantidad {
			return nil, ErrStockInsuficiente
		}

		if _, visto := stockRestante[productoID]; !visto {
			stockRestante[productoID] = p.StockActual
		}
		stockRestante[productoID] -= det.Cantidad
		nombres[productoID] = p.Nombre

		total = total.Add(det.PrecioUnitario.Mul(decimal.NewFromInt(int64(det.Cantidad))))
		detalles = append(detalles, model.DetalleVentaLocal{
			ProductoID:     productoID,
			Cantidad:       det.Cantidad,
			Talle:          det.Talle,
			Color:          det.Color,
			PrecioUnitario: det.PrecioUnitario,
		})
		movs = append(movs, model.MovimientoStock{
			ProductoID: productoID,
			Tipo:       model.MovimientoSalida,
			Cantidad:   det.Cantidad,
			Motivo:     "Venta en local",
			Origen:     model.OrigenVenta,
		})
	}

	estado := req.Estado
	if estado == "" {
		estado = model.EstadoVentaPagado
	}

	venta := &model.VentaLocal{
		ClienteID: clienteID,
		Fecha:     time.Now(),
		Total:     total.Round(2),
		FormaPago: req.FormaPago,
		Estado:    estado,
		Detalles:  detalles,
	}

	if err := s.ventas.RegistrarAtomico(ctx, venta, movs); err != nil {
		if errors.Is(err, repository.ErrStockInsuficiente) {
			return nil, ErrStockInsuficiente
		}
		return nil, err
	}

	for productoID, restante := range stockRestante {
		if restante <= s.stockBajoLimite && s.notificador != nil {
			if err := s.notificador.EncolarAlertaStock(ctx, productoID, nombres[productoID], restante); err != nil {
				s.log.Warn().Err(err).
					Str("producto_id", productoID.String()).
					Msg("no se pudo encolar la alerta de stock bajo")
			}
		}
	}
	return venta, nil
}

func (s *VentaService) Obtener(ctx context.Context, id uuid.UUID) (*model.VentaLocal, error) {
	v, err := s.ventas.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}
	return v, nil
}

func (s *VentaService) Listar(ctx context.Context) ([]model.VentaLocal, error) {
	return s.ventas.List(ctx)
}
