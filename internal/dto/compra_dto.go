package dto

import "github.com/shopspring/decimal"

type DetalleCompraRequest struct {
	ProductoID     string          `json:"producto_id"     validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
}

type RegistrarCompraRequest struct {
	ProveedorID   string                 `json:"proveedor_id"  validate:"required,uuid"`
	CostoEnvio    decimal.Decimal        `json:"costo_envio"   validate:"min=0"`
	FormaPago     string                 `json:"forma_pago"    validate:"required,oneof=efectivo transferencia otro"`
	Observaciones *string                `json:"observaciones"`
	Detalles      []DetalleCompraRequest `json:"detalles"      validate:"required,min=1,dive"`
}

type DetalleCompraResponse struct {
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

type CompraResponse struct {
	ID            string                  `json:"id"`
	ProveedorID   *string                 `json:"proveedor_id"`
	Fecha         string                  `json:"fecha"`
	Total         decimal.Decimal         `json:"total"`
	CostoEnvio    decimal.Decimal         `json:"costo_envio"`
	FormaPago     string                  `json:"forma_pago"`
	Observaciones *string                 `json:"observaciones"`
	Detalles      []DetalleCompraResponse `json:"detalles"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int              `json:"total"`
}
