package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a store customer, referenced by ventas and deudas.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"size:100;not null"`
	Telefono  *string   `gorm:"size:20"`
	Email     *string   `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Ventas []VentaLocal `gorm:"foreignKey:ClienteID"`
	Deudas []Deuda      `gorm:"foreignKey:ClienteID"`
}
