package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompraMayorista is a wholesale purchase from a supplier. Registering one
// increments stock of every product in its detalles and writes the matching
// entrada movements, all in one transaction.
type CompraMayorista struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID   *uuid.UUID `gorm:"type:uuid;index"`
	Fecha         time.Time  `gorm:"not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CostoEnvio    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	FormaPago     string          `gorm:"not null;default:'efectivo'"`
	Observaciones *string
	CreatedAt     time.Time

	Proveedor *Proveedor               `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleCompraMayorista `gorm:"foreignKey:CompraID"`
}

func (CompraMayorista) TableName() string { return "compras_mayorista" }

// DetalleCompraMayorista is one line of a wholesale purchase.
type DetalleCompraMayorista struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Cantidad       int       `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleCompraMayorista) TableName() string { return "detalle_compra_mayorista" }
