package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles.
const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
)

// Usuario is a system account. PasswordHash is bcrypt and is never
// serialized to clients.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"size:45;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:155;not null" json:"-"`
	Rol          string    `gorm:"not null"` // admin | empleado
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
