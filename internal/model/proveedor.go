package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor is a wholesale supplier. PorDefecto marks the fallback supplier
// assigned to catalog imports that do not name one.
type Proveedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"size:100;not null"`
	Contacto    *string   `gorm:"size:100"`
	Descripcion *string
	PorDefecto  bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Productos []Producto          `gorm:"foreignKey:ProveedorID"`
	Compras   []CompraMayorista   `gorm:"foreignKey:ProveedorID"`
	Encargues []EncargueProveedor `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
