package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	ProveedorID     *string         `json:"proveedor_id"     validate:"omitempty,uuid"`
	Nombre          string          `json:"nombre"           validate:"required,min=2,max=150"`
	Descripcion     *string         `json:"descripcion"`
	PrecioProveedor decimal.Decimal `json:"precio_proveedor" validate:"required,gt=0"`
	PrecioMiLocal   decimal.Decimal `json:"precio_mi_local"  validate:"required,gt=0"`
	StockActual     int             `json:"stock_actual"     validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre          *string          `json:"nombre"           validate:"omitempty,min=2,max=150"`
	Descripcion     *string          `json:"descripcion"`
	PrecioProveedor *decimal.Decimal `json:"precio_proveedor" validate:"omitempty,gt=0"`
	PrecioMiLocal   *decimal.Decimal `json:"precio_mi_local"  validate:"omitempty,gt=0"`
	ProveedorID     *string          `json:"proveedor_id"     validate:"omitempty,uuid"`
}

type AjustarStockRequest struct {
	Cantidad int    `json:"cantidad" validate:"required"`
	Motivo   string `json:"motivo"   validate:"required"`
}

type CambioPrecioRequest struct {
	Precio decimal.Decimal `json:"precio" validate:"required,gt=0"`
	Tipo   string          `json:"tipo"   validate:"required,oneof=proveedor mi_local"`
}

type AgregarImagenRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID              string          `json:"id"`
	ProveedorID     *string         `json:"proveedor_id"`
	ProveedorNombre *string         `json:"proveedor_nombre,omitempty"`
	Nombre          string          `json:"nombre"`
	Descripcion     *string         `json:"descripcion"`
	PrecioProveedor decimal.Decimal `json:"precio_proveedor"`
	PrecioMiLocal   decimal.Decimal `json:"precio_mi_local"`
	StockActual     int             `json:"stock_actual"`
	FechaAgregado   string          `json:"fecha_agregado"`

	Imagenes    []ImagenItem          `json:"imagenes,omitempty"`
	Movimientos []MovimientoStockItem `json:"movimientos,omitempty"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int                `json:"total"`
}

type ImagenItem struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type HistorialPrecioItem struct {
	ID          string          `json:"id"`
	ProductoID  string          `json:"producto_id"`
	Precio      decimal.Decimal `json:"precio"`
	Tipo        string          `json:"tipo"`
	FechaCambio string          `json:"fecha_cambio"`
}

type HistorialPrecioListResponse struct {
	Data  []HistorialPrecioItem `json:"data"`
	Total int                   `json:"total"`
}

type MovimientoStockItem struct {
	ID           string  `json:"id"`
	ProductoID   string  `json:"producto_id"`
	Tipo         string  `json:"tipo"`
	Cantidad     int     `json:"cantidad"`
	Motivo       string  `json:"motivo"`
	Origen       string  `json:"origen"`
	ReferenciaID *string `json:"referencia_id"`
	Fecha        string  `json:"fecha"`
}

type MovimientoStockListResponse struct {
	Data  []MovimientoStockItem `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
