package dto

import "github.com/shopspring/decimal"

type CrearClienteRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=2,max=100"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

type ClienteResponse struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Telefono *string `json:"telefono"`
	Email    *string `json:"email"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int               `json:"total"`
}

// ─── Deudas ──────────────────────────────────────────────────────────────────

type CrearDeudaRequest struct {
	Monto           decimal.Decimal `json:"monto"             validate:"required,gt=0"`
	Descripcion     *string         `json:"descripcion"`
	FechaLimitePago *string         `json:"fecha_limite_pago" validate:"omitempty,datetime=2006-01-02"`
}

type DeudaResponse struct {
	ID              string          `json:"id"`
	ClienteID       string          `json:"cliente_id"`
	Monto           decimal.Decimal `json:"monto"`
	Descripcion     *string         `json:"descripcion"`
	Fecha           string          `json:"fecha"`
	FechaLimitePago *string         `json:"fecha_limite_pago"`
	Pagado          bool            `json:"pagado"`
	FechaPago       *string         `json:"fecha_pago"`
}

type DeudaListResponse struct {
	Data  []DeudaResponse `json:"data"`
	Total int             `json:"total"`
}
