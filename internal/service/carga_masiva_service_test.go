package service

import (
	"context"
	"errors"
	"testing"

	"zapastock/internal/dto"
	"zapastock/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func armarCargaService(t *testing.T) (*CargaMasivaService, *productoRepoStub, *proveedorRepoStub) {
	t.Helper()
	productos := newProductoRepoStub()
	proveedores := newProveedorRepoStub()
	proveedores.agregar(&model.Proveedor{Nombre: "Proveedor general", PorDefecto: true})
	svc := NewCargaMasivaService(productos, proveedores, 500, 1000, zerolog.Nop())
	return svc, productos, proveedores
}

func filaStr(s string) *string { return &s }

func TestCargaMasiva_CreaProductosNuevos(t *testing.T) {
	svc, productos, _ := armarCargaService(t)

	filas := []dto.FilaCatalogo{
		{Nombre: "Zapatilla Runner", Precio: "1.234,56"},
		{Nombre: "Botin Clasico", Precio: "$ 1.500", Descripcion: filaStr("**Oferta** cuero\r\nlegitimo")},
		{Nombre: "Ojota Verano", Precio: "2000"},
	}

	lote, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{StockPorDefecto: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, lote.Resumen.Total)
	assert.Equal(t, 3, lote.Resumen.Exitosos)
	assert.Equal(t, 0, lote.Resumen.Errores)
	assert.Equal(t, 100, lote.Resumen.PorcentajeExito)
	require.Len(t, lote.Resultados.Detalles, 3)

	// El orden y el indice 1-based se preservan
	for i, det := range lote.Resultados.Detalles {
		assert.Equal(t, i+1, det.Index)
		assert.Equal(t, dto.EstadoCreado, det.Estado)
		require.NotNil(t, det.ID)
	}
	assert.Equal(t, "1234.56", lote.Resultados.Detalles[0].PrecioFinal.StringFixed(2))
	assert.Equal(t, "1500.00", lote.Resultados.Detalles[1].PrecioFinal.StringFixed(2))

	// Cada producto creado lleva precio proveedor estimado, historial doble
	// y movimiento de stock inicial
	require.Len(t, productos.productos, 3)
	for _, p := range productos.productos {
		assert.Equal(t, p.PrecioMiLocal.Mul(factorPrecioProveedor).Round(2).StringFixed(2),
			p.PrecioProveedor.StringFixed(2))
		assert.Equal(t, 3, p.StockActual)
		require.NotNil(t, p.ProveedorID)

		historial := productos.historialDe(p.ID)
		require.Len(t, historial, 2)

		movs := productos.movimientosDe(p.ID)
		require.Len(t, movs, 1)
		assert.Equal(t, model.MovimientoEntrada, movs[0].Tipo)
		assert.Equal(t, "Stock inicial", movs[0].Motivo)
	}

	// La descripcion se limpia de markdown y saltos de linea
	var botin *model.Producto
	for _, p := range productos.productos {
		if p.Nombre == "Botin Clasico" {
			botin = p
		}
	}
	require.NotNil(t, botin)
	require.NotNil(t, botin.Descripcion)
	assert.Equal(t, "cuero legitimo", *botin.Descripcion)
}

func TestCargaMasiva_ReimportacionMarcaDuplicados(t *testing.T) {
	svc, _, _ := armarCargaService(t)

	filas := []dto.FilaCatalogo{
		{Nombre: "Zapatilla Runner", Precio: "1000"},
		{Nombre: "Botin Clasico", Precio: "2000"},
	}

	_, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{})
	require.NoError(t, err)

	lote, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{})
	require.NoError(t, err)

	assert.Equal(t, 0, lote.Resumen.Exitosos)
	assert.Equal(t, 2, lote.Resumen.Duplicados)
	assert.Equal(t, 0, lote.Resumen.PorcentajeExito)
	for _, det := range lote.Resultados.Detalles {
		assert.Equal(t, dto.EstadoDuplicado, det.Estado)
	}
}

func TestCargaMasiva_AumentoPorcentaje(t *testing.T) {
	svc, productos, _ := armarCargaService(t)

	filas := []dto.FilaCatalogo{{Nombre: "Zapatilla Runner", Precio: "1.000"}}
	lote, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{AumentoPorcentaje: 10})
	require.NoError(t, err)

	require.Equal(t, 1, lote.Resumen.Exitosos)
	assert.Equal(t, "1100.00", lote.Resultados.Detalles[0].PrecioFinal.StringFixed(2))

	for _, p := range productos.productos {
		assert.Equal(t, "1100.00", p.PrecioMiLocal.StringFixed(2))
		assert.Equal(t, "770.00", p.PrecioProveedor.StringFixed(2))
	}
}

func TestCargaMasiva_DuplicadoDentroDelLote(t *testing.T) {
	svc, _, _ := armarCargaService(t)

	// Mismo nombre tras normalizar: acentos, mayusculas y espacios extra
	filas := []dto.FilaCatalogo{
		{Nombre: "Zapatilla Ñandú", Precio: "1000"},
		{Nombre: "zapatilla  nandu", Precio: "2000"},
	}

	lote, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{})
	require.NoError(t, err)

	assert.Equal(t, dto.EstadoCreado, lote.Resultados.Detalles[0].Estado)
	assert.Equal(t, dto.EstadoDuplicado, lote.Resultados.Detalles[1].Estado)
	assert.Equal(t, 50, lote.Resumen.PorcentajeExito)
}

func TestCargaMasiva_FilasInvalidasNoAbortanElLote(t *testing.T) {
	svc, _, _ := armarCargaService(t)

	filas := []dto.FilaCatalogo{
		{Nombre: "Sin precio", Precio: "sin precio"},
		{Nombre: "", Precio: "1000"},
		{Nombre: "Precio bajo", Precio: "50"},
		{Nombre: "Zapatilla Valida", Precio: "1500"},
	}

	lote, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{})
	require.NoError(t, err)

	assert.Equal(t, 4, lote.Resumen.Total)
	assert.Equal(t, 1, lote.Resumen.Exitosos)
	assert.Equal(t, 3, lote.Resumen.Errores)
	assert.Equal(t, 25, lote.Resumen.PorcentajeExito)

	// El mensaje de parseo conserva el valor crudo que fallo
	assert.Equal(t, dto.EstadoError, lote.Resultados.Detalles[0].Estado)
	assert.Contains(t, lote.Resultados.Detalles[0].Mensaje, `"sin precio"`)
	assert.Equal(t, "nombre y precio son requeridos", lote.Resultados.Detalles[1].Mensaje)
	assert.Equal(t, dto.EstadoError, lote.Resultados.Detalles[2].Estado)
	assert.Contains(t, lote.Resultados.Detalles[2].Mensaje, `"50"`)
	assert.Equal(t, dto.EstadoCreado, lote.Resultados.Detalles[3].Estado)
}

func TestCargaMasiva_PrecioVacioEsFilaIncompleta(t *testing.T) {
	svc, _, _ := armarCargaService(t)

	filas := []dto.FilaCatalogo{{Nombre: "Zapatilla Runner", Precio: "   "}}
	lote, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{})
	require.NoError(t, err)

	assert.Equal(t, dto.EstadoError, lote.Resultados.Detalles[0].Estado)
	assert.Equal(t, "nombre y precio son requeridos", lote.Resultados.Detalles[0].Mensaje)
}

func TestCargaMasiva_DuplicadoConPrecioRotoSigueSiendoDuplicado(t *testing.T) {
	svc, productos, _ := armarCargaService(t)

	_, err := svc.ProcesarInline(context.Background(),
		[]dto.FilaCatalogo{{Nombre: "Zapatilla Runner", Precio: "1000"}}, OpcionesCarga{})
	require.NoError(t, err)

	// El duplicado se detecta antes de intentar parsear el precio
	lote, err := svc.ProcesarInline(context.Background(),
		[]dto.FilaCatalogo{{Nombre: "Zapatilla Runner", Precio: "sin precio"}}, OpcionesCarga{})
	require.NoError(t, err)

	assert.Equal(t, dto.EstadoDuplicado, lote.Resultados.Detalles[0].Estado)
	assert.Equal(t, 1, lote.Resumen.Duplicados)
	assert.Equal(t, 0, lote.Resumen.Errores)
	assert.Len(t, productos.productos, 1)
}

func TestCargaMasiva_FalloDeCreacionSeRegistraComoError(t *testing.T) {
	svc, productos, _ := armarCargaService(t)
	productos.errCrear = errors.New("conexion perdida")

	filas := []dto.FilaCatalogo{{Nombre: "Zapatilla Runner", Precio: "1000"}}
	lote, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{})
	require.NoError(t, err)

	assert.Equal(t, 1, lote.Resumen.Errores)
	assert.Equal(t, "conexion perdida", lote.Resultados.Detalles[0].Mensaje)
}

func TestCargaMasiva_LimiteDeFilas(t *testing.T) {
	productos := newProductoRepoStub()
	proveedores := newProveedorRepoStub()
	proveedores.agregar(&model.Proveedor{Nombre: "General", PorDefecto: true})
	svc := NewCargaMasivaService(productos, proveedores, 2, 4, zerolog.Nop())

	filas := []dto.FilaCatalogo{
		{Nombre: "A", Precio: "1000"},
		{Nombre: "B", Precio: "1000"},
		{Nombre: "C", Precio: "1000"},
	}

	_, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{})
	require.ErrorIs(t, err, ErrLimiteFilasExcedido)

	// El limite por archivo es independiente
	_, err = svc.ProcesarArchivo(context.Background(), filas, OpcionesCarga{})
	require.NoError(t, err)
}

func TestCargaMasiva_ProveedorExplicito(t *testing.T) {
	svc, productos, proveedores := armarCargaService(t)
	otro := proveedores.agregar(&model.Proveedor{Nombre: "Mayorista Norte"})

	filas := []dto.FilaCatalogo{{Nombre: "Zapatilla Runner", Precio: "1000"}}
	lote, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{ProveedorID: &otro.ID})
	require.NoError(t, err)

	assert.Equal(t, otro.ID, lote.Proveedor.ID)
	for _, p := range productos.productos {
		require.NotNil(t, p.ProveedorID)
		assert.Equal(t, otro.ID, *p.ProveedorID)
	}
}

func TestCargaMasiva_ProveedorInexistente(t *testing.T) {
	svc, _, _ := armarCargaService(t)

	inexistente := newProveedorRepoStub().agregar(&model.Proveedor{Nombre: "Fantasma"}).ID
	filas := []dto.FilaCatalogo{{Nombre: "Zapatilla Runner", Precio: "1000"}}

	_, err := svc.ProcesarInline(context.Background(), filas, OpcionesCarga{ProveedorID: &inexistente})
	require.ErrorIs(t, err, ErrProveedorNoEncontrado)
}
