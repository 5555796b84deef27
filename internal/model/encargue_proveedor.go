package model

import (
	"time"

	"github.com/google/uuid"
)

// Order states.
const (
	EstadoEncarguePendiente = "pendiente"
	EstadoEncargueRecibido  = "recibido"
)

// EncargueProveedor is an order placed with a supplier. Marking it recibido
// increments stock for every detalle and writes entrada movements.
type EncargueProveedor struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID *uuid.UUID `gorm:"type:uuid;index"`
	Fecha       time.Time  `gorm:"not null"`
	Estado      string     `gorm:"not null;default:'pendiente'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Proveedor *Proveedor                 `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleEncargueProveedor `gorm:"foreignKey:EncargueID"`
}

func (EncargueProveedor) TableName() string { return "encargues_proveedor" }

// DetalleEncargueProveedor is one line of a supplier order.
type DetalleEncargueProveedor struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EncargueID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`
	Cantidad   int       `gorm:"not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleEncargueProveedor) TableName() string { return "detalle_encargue_proveedor" }
