package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement kinds.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
	MovimientoAjuste  = "ajuste"
)

// Movement origins.
const (
	OrigenCompra       = "compra"
	OrigenVenta        = "venta"
	OrigenAjusteManual = "ajuste_manual"
	OrigenEncargue     = "encargue"
)

// MovimientoStock is the append-only audit log of every stock change.
// Cantidad is always positive; Tipo carries the direction. ReferenciaID
// points at the venta/compra/encargue that caused the movement, when any.
type MovimientoStock struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo         string    `gorm:"not null"` // entrada | salida | ajuste
	Cantidad     int       `gorm:"not null"`
	Motivo       string
	Origen       string     `gorm:"not null"` // compra | venta | ajuste_manual | encargue
	ReferenciaID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (MovimientoStock) TableName() string { return "movimientos_stock" }
