package service

import (
	"context"
	"testing"

	"zapastock/internal/dto"
	"zapastock/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func armarProductoService(t *testing.T) (*ProductoService, *productoRepoStub, *notificadorStub) {
	t.Helper()
	productos := newProductoRepoStub()
	notificador := &notificadorStub{}
	svc := NewProductoService(
		productos, &historialRepoStub{}, &movimientoRepoStub{}, newProveedorRepoStub(),
		notificador, 5, zerolog.Nop(),
	)
	return svc, productos, notificador
}

func sembrarProducto(productos *productoRepoStub, nombre string, stock int) *model.Producto {
	p := &model.Producto{
		ID:              uuid.New(),
		Nombre:          nombre,
		PrecioProveedor: decimal.NewFromInt(700),
		PrecioMiLocal:   decimal.NewFromInt(1000),
		StockActual:     stock,
	}
	productos.productos[p.ID] = p
	return p
}

func TestCrearProducto_EscribeHistorialYMovimientoInicial(t *testing.T) {
	svc, productos, _ := armarProductoService(t)

	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:          "Zapatilla Runner",
		PrecioProveedor: decimal.NewFromInt(700),
		PrecioMiLocal:   decimal.NewFromInt(1000),
		StockActual:     10,
	})
	require.NoError(t, err)

	historial := productos.historialDe(p.ID)
	require.Len(t, historial, 2)
	tipos := map[string]string{}
	for _, h := range historial {
		tipos[h.Tipo] = h.Precio.StringFixed(2)
	}
	assert.Equal(t, "700.00", tipos[model.TipoPrecioProveedor])
	assert.Equal(t, "1000.00", tipos[model.TipoPrecioMiLocal])

	movs := productos.movimientosDe(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimientoEntrada, movs[0].Tipo)
	assert.Equal(t, 10, movs[0].Cantidad)
	assert.Equal(t, model.OrigenAjusteManual, movs[0].Origen)
}

func TestCrearProducto_SinStockNoGeneraMovimiento(t *testing.T) {
	svc, productos, _ := armarProductoService(t)

	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:          "Zapatilla Runner",
		PrecioProveedor: decimal.NewFromInt(700),
		PrecioMiLocal:   decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.Empty(t, productos.movimientosDe(p.ID))
}

func TestAjustarStock_NegativoRechazado(t *testing.T) {
	svc, productos, _ := armarProductoService(t)
	p := sembrarProducto(productos, "Zapatilla Runner", 3)

	_, err := svc.AjustarStock(context.Background(), p.ID, dto.AjustarStockRequest{
		Cantidad: -5,
		Motivo:   "rotura",
	})
	require.ErrorIs(t, err, ErrStockNegativo)

	// El stock no se toco y no hay movimiento registrado
	assert.Equal(t, 3, productos.productos[p.ID].StockActual)
	assert.Empty(t, productos.movimientosDe(p.ID))
}

func TestAjustarStock_SalidaHastaCero(t *testing.T) {
	svc, productos, notificador := armarProductoService(t)
	p := sembrarProducto(productos, "Zapatilla Runner", 3)

	actualizado, err := svc.AjustarStock(context.Background(), p.ID, dto.AjustarStockRequest{
		Cantidad: -3,
		Motivo:   "venta por fuera del sistema",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, actualizado.StockActual)

	movs := productos.movimientosDe(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimientoSalida, movs[0].Tipo)
	assert.Equal(t, 3, movs[0].Cantidad)

	// Quedo por debajo del limite: se encola la alerta
	require.Len(t, notificador.alertas, 1)
	assert.Equal(t, 0, notificador.alertas[0].Stock)
}

func TestActualizar_CambioDePrecioDejaHistorial(t *testing.T) {
	svc, productos, _ := armarProductoService(t)
	p := sembrarProducto(productos, "Zapatilla Runner", 3)

	nuevo := decimal.NewFromInt(1200)
	_, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		PrecioMiLocal: &nuevo,
	})
	require.NoError(t, err)

	historial := productos.historialDe(p.ID)
	require.Len(t, historial, 1)
	assert.Equal(t, model.TipoPrecioMiLocal, historial[0].Tipo)
	assert.Equal(t, "1200.00", historial[0].Precio.StringFixed(2))
}

func TestActualizar_PrecioIgualNoDejaHistorial(t *testing.T) {
	svc, productos, _ := armarProductoService(t)
	p := sembrarProducto(productos, "Zapatilla Runner", 3)

	mismo := decimal.NewFromInt(1000)
	_, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		PrecioMiLocal: &mismo,
	})
	require.NoError(t, err)
	assert.Empty(t, productos.historialDe(p.ID))
}

func TestEliminar_ConTransaccionesRechazado(t *testing.T) {
	svc, productos, _ := armarProductoService(t)
	p := sembrarProducto(productos, "Zapatilla Runner", 3)
	productos.conTransacciones[p.ID] = true

	err := svc.Eliminar(context.Background(), p.ID)
	require.ErrorIs(t, err, ErrTieneTransacciones)
	assert.Contains(t, productos.productos, p.ID)
}

func TestEliminar_SinTransacciones(t *testing.T) {
	svc, productos, _ := armarProductoService(t)
	p := sembrarProducto(productos, "Zapatilla Runner", 3)

	require.NoError(t, svc.Eliminar(context.Background(), p.ID))
	assert.NotContains(t, productos.productos, p.ID)
}

func TestCambiarPrecio_EsSoloAuditoria(t *testing.T) {
	productos := newProductoRepoStub()
	historial := &historialRepoStub{}
	svc := NewProductoService(
		productos, historial, &movimientoRepoStub{}, newProveedorRepoStub(),
		nil, 5, zerolog.Nop(),
	)
	p := sembrarProducto(productos, "Zapatilla Runner", 3)

	h, err := svc.CambiarPrecio(context.Background(), p.ID, dto.CambioPrecioRequest{
		Precio: decimal.NewFromInt(999),
		Tipo:   model.TipoPrecioMiLocal,
	})
	require.NoError(t, err)
	assert.Equal(t, "999.00", h.Precio.StringFixed(2))

	// El precio del producto no cambia por esta via
	assert.Equal(t, "1000.00", productos.productos[p.ID].PrecioMiLocal.StringFixed(2))
}

func TestObtener_NoExiste(t *testing.T) {
	svc, _, _ := armarProductoService(t)
	_, err := svc.Obtener(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrProductoNoEncontrado)
}
