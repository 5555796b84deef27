package service

import "errors"

// Sentinel errors. Handlers map these to HTTP status codes; anything else
// surfaces as a 500 with a generic detail.
var (
	ErrProductoNoEncontrado  = errors.New("producto no encontrado")
	ErrProveedorNoEncontrado = errors.New("proveedor no encontrado")
	ErrClienteNoEncontrado   = errors.New("cliente no encontrado")
	ErrVentaNoEncontrada     = errors.New("venta no encontrada")
	ErrCompraNoEncontrada    = errors.New("compra no encontrada")
	ErrEncargueNoEncontrado  = errors.New("encargue no encontrado")
	ErrDeudaNoEncontrada     = errors.New("deuda no encontrada")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")

	ErrStockNegativo      = errors.New("el ajuste dejaria el stock en negativo")
	ErrStockInsuficiente  = errors.New("stock insuficiente para la venta")
	ErrTieneTransacciones = errors.New("el producto tiene ventas, compras o encargues asociados")

	ErrProveedorConProductos = errors.New("el proveedor tiene productos asociados")
	ErrProveedorPorDefecto   = errors.New("el proveedor por defecto no puede eliminarse")

	ErrEncargueYaRecibido = errors.New("el encargue ya fue recibido")
	ErrDeudaYaPagada      = errors.New("la deuda ya fue pagada")

	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioInactivo       = errors.New("usuario inactivo")
	ErrUsernameEnUso         = errors.New("el nombre de usuario ya esta en uso")

	ErrLimiteFilasExcedido = errors.New("el catalogo supera el limite de filas")
)
