package service

import (
	"context"
	"errors"
	"time"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EncargueService struct {
	encargues   repository.EncargueRepository
	productos   repository.ProductoRepository
	proveedores repository.ProveedorRepository
}

func NewEncargueService(
	encargues repository.EncargueRepository,
	productos repository.ProductoRepository,
	proveedores repository.ProveedorRepository,
) *EncargueService {
	return &EncargueService{encargues: encargues, productos: productos, proveedores: proveedores}
}

// Crear registers a supplier order in estado pendiente. Stock does not move
// until the order is marked recibido.
func (s *EncargueService) Crear(ctx context.Context, req dto.CrearEncargueRequest) (*model.EncargueProveedor, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, ErrProveedorNoEncontrado
	}
	if _, err := s.proveedores.FindByID(ctx, proveedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNoEncontrado
		}
		return nil, err
	}

	detalles := make([]model.DetalleEncargueProveedor, 0, len(req.Detalles))
	for _, det := range req.Detalles {
		productoID, err := uuid.Parse(det.ProductoID)
		if err != nil {
			return nil, ErrProductoNoEncontrado
		}
		if _, err := s.productos.FindByID(ctx, productoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductoNoEncontrado
			}
			return nil, err
		}
		detalles = append(detalles, model.DetalleEncargueProveedor{
			ProductoID: productoID,
			Cantidad:   det.Cantidad,
		})
	}

	encargue := &model.EncargueProveedor{
		ProveedorID: &proveedorID,
		Fecha:       time.Now(),
		Estado:      model.EstadoEncarguePendiente,
		Detalles:    detalles,
	}
	if err := s.encargues.Create(ctx, encargue); err != nil {
		return nil, err
	}
	return encargue, nil
}

// MarcarRecibido flips a pending order to recibido, incrementing stock and
// writing entrada movements for every line. Idempotence is enforced with
// ErrEncargueYaRecibido.
func (s *EncargueService) MarcarRecibido(ctx context.Context, id uuid.UUID) (*model.EncargueProveedor, error) {
	encargue, err := s.encargues.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEncargueNoEncontrado
		}
		return nil, err
	}
	if encargue.Estado == model.EstadoEncargueRecibido {
		return nil, ErrEncargueYaRecibido
	}

	movs := make([]model.MovimientoStock, 0, len(encargue.Detalles))
	for _, det := range encargue.Detalles {
		movs = append(movs, model.MovimientoStock{
			ProductoID: det.ProductoID,
			Tipo:       model.MovimientoEntrada,
			Cantidad:   det.Cantidad,
			Motivo:     "Encargue recibido",
			Origen:     model.OrigenEncargue,
		})
	}

	if err := s.encargues.MarcarRecibidoAtomico(ctx, encargue, movs); err != nil {
		return nil, err
	}
	encargue.Estado = model.EstadoEncargueRecibido
	return encargue, nil
}

func (s *EncargueService) Obtener(ctx context.Context, id uuid.UUID) (*model.EncargueProveedor, error) {
	e, err := s.encargues.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEncargueNoEncontrado
		}
		return nil, err
	}
	return e, nil
}

func (s *EncargueService) Listar(ctx context.Context) ([]model.EncargueProveedor, error) {
	return s.encargues.List(ctx)
}
