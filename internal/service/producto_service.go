package service

import (
	"context"
	"errors"
	"fmt"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ProductoService owns every write to the product aggregate: price changes
// always leave a historial row, stock changes always leave a movimiento.
// No caller mutates precio or stock through any other path.
type ProductoService struct {
	productos       repository.ProductoRepository
	historial       repository.HistorialPrecioRepository
	movimientos     repository.MovimientoStockRepository
	proveedores     repository.ProveedorRepository
	notificador     NotificadorStockBajo
	stockBajoLimite int
	log             zerolog.Logger
}

func NewProductoService(
	productos repository.ProductoRepository,
	historial repository.HistorialPrecioRepository,
	movimientos repository.MovimientoStockRepository,
	proveedores repository.ProveedorRepository,
	notificador NotificadorStockBajo,
	stockBajoLimite int,
	log zerolog.Logger,
) *ProductoService {
	return &ProductoService{
		productos:       productos,
		historial:       historial,
		movimientos:     movimientos,
		proveedores:     proveedores,
		notificador:     notificador,
		stockBajoLimite: stockBajoLimite,
		log:             log,
	}
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	var proveedorID *uuid.UUID
	if req.ProveedorID != nil {
		id, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, ErrProveedorNoEncontrado
		}
		if _, err := s.proveedores.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProveedorNoEncontrado
			}
			return nil, err
		}
		proveedorID = &id
	}

	p := &model.Producto{
		ProveedorID:     proveedorID,
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		PrecioProveedor: req.PrecioProveedor,
		PrecioMiLocal:   req.PrecioMiLocal,
		StockActual:     req.StockActual,
	}

	historial := []model.HistorialPrecio{
		{Precio: req.PrecioProveedor, Tipo: model.TipoPrecioProveedor},
		{Precio: req.PrecioMiLocal, Tipo: model.TipoPrecioMiLocal},
	}

	var movInicial *model.MovimientoStock
	if req.StockActual > 0 {
		movInicial = &model.MovimientoStock{
			Tipo:     model.MovimientoEntrada,
			Cantidad: req.StockActual,
			Motivo:   "Stock inicial",
			Origen:   model.OrigenAjusteManual,
		}
	}

	if err := s.productos.CrearAtomico(ctx, p, historial, movInicial); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	p, err := s.productos.FindConRelaciones(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductoService) Listar(ctx context.Context) ([]model.Producto, error) {
	return s.productos.List(ctx)
}

func (s *ProductoService) Buscar(ctx context.Context, termino string) ([]model.Producto, error) {
	return s.productos.BuscarPorNombre(ctx, termino)
}

func (s *ProductoService) PorProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.Producto, error) {
	if _, err := s.proveedores.FindByID(ctx, proveedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNoEncontrado
		}
		return nil, err
	}
	return s.productos.FindByProveedorID(ctx, proveedorID)
}

func (s *ProductoService) ConStockBajo(ctx context.Context) ([]model.Producto, error) {
	return s.productos.ConStockBajo(ctx, s.stockBajoLimite)
}

// Actualizar applies partial changes. A changed price of either kind appends
// the matching historial row in the same transaction as the product update.
func (s *ProductoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}

	var historial []model.HistorialPrecio

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.ProveedorID != nil {
		provID, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, ErrProveedorNoEncontrado
		}
		if _, err := s.proveedores.FindByID(ctx, provID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProveedorNoEncontrado
			}
			return nil, err
		}
		p.ProveedorID = &provID
	}
	if req.PrecioProveedor != nil && !req.PrecioProveedor.Equal(p.PrecioProveedor) {
		p.PrecioProveedor = *req.PrecioProveedor
		historial = append(historial, model.HistorialPrecio{
			Precio: *req.PrecioProveedor, Tipo: model.TipoPrecioProveedor,
		})
	}
	if req.PrecioMiLocal != nil && !req.PrecioMiLocal.Equal(p.PrecioMiLocal) {
		p.PrecioMiLocal = *req.PrecioMiLocal
		historial = append(historial, model.HistorialPrecio{
			Precio: *req.PrecioMiLocal, Tipo: model.TipoPrecioMiLocal,
		})
	}

	if err := s.productos.ActualizarAtomico(ctx, p, historial); err != nil {
		return nil, err
	}
	return p, nil
}

// AjustarStock applies a signed delta. Cantidad > 0 records an entrada,
// cantidad < 0 a salida; the movement always stores the absolute quantity.
// An adjustment that would cross zero is rejected with ErrStockNegativo.
func (s *ProductoService) AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*model.Producto, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}

	nuevoStock := p.StockActual + req.Cantidad
	if nuevoStock < 0 {
		return nil, fmt.Errorf("stock actual %d, ajuste %d: %w", p.StockActual, req.Cantidad, ErrStockNegativo)
	}

	tipo := model.MovimientoEntrada
	cantidad := req.Cantidad
	if req.Cantidad < 0 {
		tipo = model.MovimientoSalida
		cantidad = -req.Cantidad
	}
	mov := &model.MovimientoStock{
		Tipo:     tipo,
		Cantidad: cantidad,
		Motivo:   req.Motivo,
		Origen:   model.OrigenAjusteManual,
	}

	if err := s.productos.ActualizarStockAtomico(ctx, id, nuevoStock, mov); err != nil {
		return nil, err
	}
	p.StockActual = nuevoStock

	s.alertarSiStockBajo(ctx, p)
	return p, nil
}

// CambiarPrecio appends an audit row to the price history without touching
// the product itself. Price synchronization happens through Actualizar.
func (s *ProductoService) CambiarPrecio(ctx context.Context, id uuid.UUID, req dto.CambioPrecioRequest) (*model.HistorialPrecio, error) {
	if _, err := s.productos.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}

	h := &model.HistorialPrecio{
		ProductoID: id,
		Precio:     req.Precio,
		Tipo:       req.Tipo,
	}
	if err := s.historial.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *ProductoService) HistorialPrecios(ctx context.Context, id uuid.UUID) ([]model.HistorialPrecio, error) {
	if _, err := s.productos.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	return s.historial.ListByProducto(ctx, id)
}

// Eliminar removes the product and its historial, imagenes and movimientos.
// Products referenced by any venta, compra or encargue cannot be deleted.
func (s *ProductoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productos.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}

	tiene, err := s.productos.TieneTransacciones(ctx, id)
	if err != nil {
		return err
	}
	if tiene {
		return ErrTieneTransacciones
	}
	return s.productos.EliminarAtomico(ctx, id)
}

func (s *ProductoService) Movimientos(ctx context.Context, filter repository.MovimientoStockFilter) ([]model.MovimientoStock, int64, error) {
	return s.movimientos.List(ctx, filter)
}

func (s *ProductoService) AgregarImagen(ctx context.Context, id uuid.UUID, url string) (*model.ImagenProducto, error) {
	if _, err := s.productos.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	img := &model.ImagenProducto{ProductoID: id, URL: url}
	if err := s.productos.CrearImagen(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *ProductoService) alertarSiStockBajo(ctx context.Context, p *model.Producto) {
	if s.notificador == nil || p.StockActual > s.stockBajoLimite {
		return
	}
	if err := s.notificador.EncolarAlertaStock(ctx, p.ID, p.Nombre, p.StockActual); err != nil {
		s.log.Warn().Err(err).
			Str("producto_id", p.ID.String()).
			Msg("no se pudo encolar la alerta de stock bajo")
	}
}
