package model

import (
	"time"

	"github.com/google/uuid"
)

// ImagenProducto is a product photo stored as an external URL.
type ImagenProducto struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL        string    `gorm:"size:500;not null"`
	CreatedAt  time.Time
}

func (ImagenProducto) TableName() string { return "imagenes_producto" }
