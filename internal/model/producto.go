package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is the catalog unit of the store. PrecioProveedor is the supplier
// cost, PrecioMiLocal the in-store sale price; both are always positive.
// StockActual never goes negative — adjustments that would cross zero are
// rejected at the service layer.
type Producto struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID     *uuid.UUID `gorm:"type:uuid;index"`
	Nombre          string     `gorm:"size:150;not null;index"`
	Descripcion     *string
	PrecioProveedor decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioMiLocal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockActual     int             `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Proveedor        *Proveedor        `gorm:"foreignKey:ProveedorID"`
	Imagenes         []ImagenProducto  `gorm:"foreignKey:ProductoID"`
	HistorialPrecios []HistorialPrecio `gorm:"foreignKey:ProductoID"`
	Movimientos      []MovimientoStock `gorm:"foreignKey:ProductoID"`
}
