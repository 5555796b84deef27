package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deuda tracks money a customer owes the store.
type Deuda struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Monto           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Descripcion     *string
	Fecha           time.Time `gorm:"not null"`
	FechaLimitePago *time.Time
	Pagado          bool `gorm:"not null;default:false"`
	FechaPago       *time.Time
	CreatedAt       time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}
