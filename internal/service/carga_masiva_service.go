package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"zapastock/internal/catalogo"
	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// factorPrecioProveedor derives the supplier cost estimate from the final
// sale price when a catalog row carries a single price.
var factorPrecioProveedor = decimal.NewFromFloat(0.7)

// OpcionesCarga are the batch-level import options. ProveedorID nil means
// "use the default supplier".
type OpcionesCarga struct {
	ProveedorID       *uuid.UUID
	AumentoPorcentaje float64
	StockPorDefecto   int
}

// ResultadoLote is the full outcome of one import batch, including the
// resolved supplier so handlers can echo the effective configuration.
type ResultadoLote struct {
	Resultados dto.ResultadosCarga
	Resumen    dto.ResumenCarga
	Proveedor  *model.Proveedor
	Opciones   OpcionesCarga
}

// CargaMasivaService runs the catalog bulk-import pipeline: price
// normalization, name-based dedupe and sequential product creation.
//
// Rows are processed strictly in input order. Duplicate detection combines a
// snapshot of existing product names taken once at batch start with the set
// of names created earlier in the same batch; a row that fails is recorded
// and skipped, never aborting the batch.
type CargaMasivaService struct {
	productos   repository.ProductoRepository
	proveedores repository.ProveedorRepository

	maxFilasInline  int
	maxFilasArchivo int

	log zerolog.Logger
}

func NewCargaMasivaService(
	productos repository.ProductoRepository,
	proveedores repository.ProveedorRepository,
	maxFilasInline, maxFilasArchivo int,
	log zerolog.Logger,
) *CargaMasivaService {
	if maxFilasInline != maxFilasArchivo {
		log.Warn().
			Int("max_filas_inline", maxFilasInline).
			Int("max_filas_archivo", maxFilasArchivo).
			Msg("limites de filas distintos entre carga inline y por archivo")
	}
	return &CargaMasivaService{
		productos:       productos,
		proveedores:     proveedores,
		maxFilasInline:  maxFilasInline,
		maxFilasArchivo: maxFilasArchivo,
		log:             log,
	}
}

func (s *CargaMasivaService) MaxFilasInline() int  { return s.maxFilasInline }
func (s *CargaMasivaService) MaxFilasArchivo() int { return s.maxFilasArchivo }

// ProcesarInline imports a catalog received in the request body.
func (s *CargaMasivaService) ProcesarInline(ctx context.Context, filas []dto.FilaCatalogo, opts OpcionesCarga) (*ResultadoLote, error) {
	if len(filas) > s.maxFilasInline {
		return nil, fmt.Errorf("%d filas, maximo %d: %w", len(filas), s.maxFilasInline, ErrLimiteFilasExcedido)
	}
	return s.procesar(ctx, filas, opts)
}

// ProcesarArchivo imports a catalog parsed from an uploaded file.
func (s *CargaMasivaService) ProcesarArchivo(ctx context.Context, filas []dto.FilaCatalogo, opts OpcionesCarga) (*ResultadoLote, error) {
	if len(filas) > s.maxFilasArchivo {
		return nil, fmt.Errorf("%d filas, maximo %d: %w", len(filas), s.maxFilasArchivo, ErrLimiteFilasExcedido)
	}
	return s.procesar(ctx, filas, opts)
}

func (s *CargaMasivaService) procesar(ctx context.Context, filas []dto.FilaCatalogo, opts OpcionesCarga) (*ResultadoLote, error) {
	proveedor, err := s.resolverProveedor(ctx, opts.ProveedorID)
	if err != nil {
		return nil, err
	}
	opts.ProveedorID = &proveedor.ID

	existentes, err := s.snapshotNombres(ctx)
	if err != nil {
		return nil, err
	}
	vistos := make(map[string]bool, len(filas))

	factorAumento := decimal.NewFromFloat(1 + opts.AumentoPorcentaje/100)

	resultados := dto.ResultadosCarga{Detalles: make([]dto.DetalleCarga, 0, len(filas))}

	for i, fila := range filas {
		det := dto.DetalleCarga{Index: i + 1, Nombre: strings.TrimSpace(fila.Nombre)}
		clave := catalogo.NormalizarNombre(det.Nombre)

		// El chequeo de duplicados corre antes del parseo de precio: una fila
		// repetida con precio roto se reporta como duplicado, no como error.
		switch {
		case det.Nombre == "" || strings.TrimSpace(fila.Precio) == "":
			det.Estado = dto.EstadoError
			det.Mensaje = "nombre y precio son requeridos"

		case clave == "":
			det.Estado = dto.EstadoError
			det.Mensaje = "nombre invalido"

		case existentes[clave] || vistos[clave]:
			det.Estado = dto.EstadoDuplicado
			det.Mensaje = "ya existe un producto con ese nombre"

		default:
			precio, errPrecio := catalogo.ParsePrecioCatalogo(fila.Precio)
			if errPrecio != nil {
				det.Estado = dto.EstadoError
				det.Mensaje = fmt.Sprintf("error parseando precio %q: %v", fila.Precio, errPrecio)
				break
			}

			precioFinal := precio.Mul(factorAumento).Round(2)
			producto, errCrear := s.crearProducto(ctx, fila, det.Nombre, precioFinal, opts)
			if errCrear != nil {
				s.log.Error().Err(errCrear).
					Int("index", det.Index).
					Str("nombre", det.Nombre).
					Msg("fallo la creacion de un producto del catalogo")
				det.Estado = dto.EstadoError
				det.Mensaje = errCrear.Error()
				break
			}

			vistos[clave] = true
			id := producto.ID.String()
			det.Estado = dto.EstadoCreado
			det.ID = &id
			det.PrecioFinal = &precioFinal
		}

		switch det.Estado {
		case dto.EstadoCreado:
			resultados.Creados++
		case dto.EstadoDuplicado:
			resultados.Duplicados++
		case dto.EstadoError:
			resultados.Errores++
		}
		resultados.Procesados++
		resultados.Detalles = append(resultados.Detalles, det)
	}

	resumen := dto.ResumenCarga{
		Total:      resultados.Procesados,
		Exitosos:   resultados.Creados,
		Errores:    resultados.Errores,
		Duplicados: resultados.Duplicados,
	}
	if resumen.Total > 0 {
		resumen.PorcentajeExito = int(math.Round(float64(resumen.Exitosos) / float64(resumen.Total) * 100))
	}

	s.log.Info().
		Int("total", resumen.Total).
		Int("creados", resumen.Exitosos).
		Int("duplicados", resumen.Duplicados).
		Int("errores", resumen.Errores).
		Str("proveedor_id", proveedor.ID.String()).
		Msg("carga masiva completada")

	return &ResultadoLote{
		Resultados: resultados,
		Resumen:    resumen,
		Proveedor:  proveedor,
		Opciones:   opts,
	}, nil
}

func (s *CargaMasivaService) crearProducto(ctx context.Context, fila dto.FilaCatalogo, nombre string, precioFinal decimal.Decimal, opts OpcionesCarga) (*model.Producto, error) {
	precioProveedor := precioFinal.Mul(factorPrecioProveedor).Round(2)

	var descripcion *string
	if fila.Descripcion != nil {
		descripcion = catalogo.LimpiarDescripcion(*fila.Descripcion)
	}

	p := &model.Producto{
		ProveedorID:     opts.ProveedorID,
		Nombre:          nombre,
		Descripcion:     descripcion,
		PrecioProveedor: precioProveedor,
		PrecioMiLocal:   precioFinal,
		StockActual:     opts.StockPorDefecto,
	}

	historial := []model.HistorialPrecio{
		{Precio: precioProveedor, Tipo: model.TipoPrecioProveedor},
		{Precio: precioFinal, Tipo: model.TipoPrecioMiLocal},
	}

	var movInicial *model.MovimientoStock
	if opts.StockPorDefecto > 0 {
		movInicial = &model.MovimientoStock{
			Tipo:     model.MovimientoEntrada,
			Cantidad: opts.StockPorDefecto,
			Motivo:   "Stock inicial",
			Origen:   model.OrigenAjusteManual,
		}
	}

	if err := s.productos.CrearAtomico(ctx, p, historial, movInicial); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CargaMasivaService) resolverProveedor(ctx context.Context, id *uuid.UUID) (*model.Proveedor, error) {
	if id == nil {
		p, err := s.proveedores.FindPorDefecto(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("no hay proveedor por defecto: %w", ErrProveedorNoEncontrado)
			}
			return nil, err
		}
		return p, nil
	}
	p, err := s.proveedores.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNoEncontrado
		}
		return nil, err
	}
	return p, nil
}

// snapshotNombres builds the dedupe set once per batch. Products created by
// the batch itself are tracked separately in the vistos set.
func (s *CargaMasivaService) snapshotNombres(ctx context.Context) (map[string]bool, error) {
	nombres, err := s.productos.ListarNombres(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(nombres))
	for _, n := range nombres {
		if clave := catalogo.NormalizarNombre(n); clave != "" {
			set[clave] = true
		}
	}
	return set, nil
}
