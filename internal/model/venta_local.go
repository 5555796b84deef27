package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods.
const (
	FormaPagoEfectivo      = "efectivo"
	FormaPagoTransferencia = "transferencia"
	FormaPagoOtro          = "otro"
)

// Sale states.
const (
	EstadoVentaPagado    = "pagado"
	EstadoVentaPendiente = "pendiente"
)

// VentaLocal is an in-store sale. Registering one decrements stock of every
// product in its detalles and writes the matching salida movements, all in
// one transaction.
type VentaLocal struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID *uuid.UUID `gorm:"type:uuid;index"`
	Fecha     time.Time  `gorm:"not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FormaPago string          `gorm:"not null;default:'efectivo'"`
	Estado    string          `gorm:"not null;default:'pagado'"`
	CreatedAt time.Time

	Cliente  *Cliente            `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleVentaLocal `gorm:"foreignKey:VentaID"`
}

func (VentaLocal) TableName() string { return "ventas_local" }

// DetalleVentaLocal is one line of a sale. Talle and Color capture the
// sneaker variant actually sold; the catalog does not model variants.
type DetalleVentaLocal struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Cantidad       int       `gorm:"not null"`
	Talle          *string   `gorm:"size:10"`
	Color          *string   `gorm:"size:50"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVentaLocal) TableName() string { return "detalle_venta_local" }
