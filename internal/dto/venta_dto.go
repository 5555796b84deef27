package dto

import "github.com/shopspring/decimal"

type DetalleVentaRequest struct {
	ProductoID     string          `json:"producto_id"     validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	Talle          *string         `json:"talle"           validate:"omitempty,max=10"`
	Color          *string         `json:"color"           validate:"omitempty,max=50"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
}

type RegistrarVentaRequest struct {
	ClienteID *string               `json:"cliente_id" validate:"omitempty,uuid"`
	FormaPago string                `json:"forma_pago" validate:"required,oneof=efectivo transferencia otro"`
	Estado    string                `json:"estado"     validate:"omitempty,oneof=pagado pendiente"`
	Detalles  []DetalleVentaRequest `json:"detalles"   validate:"required,min=1,dive"`
}

type DetalleVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre,omitempty"`
	Cantidad       int             `json:"cantidad"`
	Talle          *string         `json:"talle"`
	Color          *string         `json:"color"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

type VentaResponse struct {
	ID        string                 `json:"id"`
	ClienteID *string                `json:"cliente_id"`
	Fecha     string                 `json:"fecha"`
	Total     decimal.Decimal        `json:"total"`
	FormaPago string                 `json:"forma_pago"`
	Estado    string                 `json:"estado"`
	Detalles  []DetalleVentaResponse `json:"detalles"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int             `json:"total"`
}
