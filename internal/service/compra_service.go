package service

import (
	"context"
	"errors"
	"time"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraService struct {
	compras     repository.CompraRepository
	productos   repository.ProductoRepository
	proveedores repository.ProveedorRepository
}

func NewCompraService(
	compras repository.CompraRepository,
	productos repository.ProductoRepository,
	proveedores repository.ProveedorRepository,
) *CompraService {
	return &CompraService{compras: compras, productos: productos, proveedores: proveedores}
}

// Registrar creates the purchase, increments stock and writes one entrada
// movement per line, all in one transaction. Total includes the shipping cost.
func (s *CompraService) Registrar(ctx context.Context, req dto.RegistrarCompraRequest) (*model.CompraMayorista, error) {
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

	total := req.CostoEnvio
	detalles := make([]model.DetalleCompraMayorista, 0, len(req.Detalles))
	movs := make([]model.MovimientoStock, 0, len(req.Detalles))

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

		total = total.Add(det.PrecioUnitario.Mul(decimal.NewFromInt(int64(det.Cantidad))))
		detalles = append(detalles, model.DetalleCompraMayorista{
			ProductoID:     productoID,
			Cantidad:       det.Cantidad,
			PrecioUnitario: det.PrecioUnitario,
		})
		movs = append(movs, model.MovimientoStock{
			ProductoID: productoID,
			Tipo:       model.MovimientoEntrada,
			Cantidad:   det.Cantidad,
			Motivo:     "Compra mayorista",
			Origen:     model.OrigenCompra,
		})
	}

	compra := &model.CompraMayorista{
		ProveedorID:   &proveedorID,
		Fecha:         time.Now(),
		Total:         total.Round(2),
		CostoEnvio:    req.CostoEnvio,
		FormaPago:     req.FormaPago,
		Observaciones: req.Observaciones,
		Detalles:      detalles,
	}

	if err := s.compras.RegistrarAtomico(ctx, compra, movs); err != nil {
		return nil, err
	}
	return compra, nil
}

func (s *CompraService) Obtener(ctx context.Context, id uuid.UUID) (*model.CompraMayorista, error) {
	c, err := s.compras.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompraNoEncontrada
		}
		return nil, err
	}
	return c, nil
}

func (s *CompraService) Listar(ctx context.Context) ([]model.CompraMayorista, error) {
	return s.compras.List(ctx)
}
