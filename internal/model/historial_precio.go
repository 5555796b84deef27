package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Price kinds tracked in the history log.
const (
	TipoPrecioProveedor = "proveedor"
	TipoPrecioMiLocal   = "mi_local"
)

// HistorialPrecio records every price a product has held, per kind.
// Append-only: rows are never updated or deleted except when cascading
// with the product itself. Two rows are written at product creation
// (initial supplier price + initial local price).
type HistorialPrecio struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Precio     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Tipo       string          `gorm:"not null"` // proveedor | mi_local
	CreatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (HistorialPrecio) TableName() string { return "historial_precios" }
