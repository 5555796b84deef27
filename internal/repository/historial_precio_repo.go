package repository

import (
	"context"

	"zapastock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistorialPrecioRepository interface {
	Create(ctx context.Context, h *model.HistorialPrecio) error
	ListByProducto(ctx context.Context, productoID uuid.UUID) ([]model.HistorialPrecio, error)
}

type historialPrecioRepo struct{ db *gorm.DB }

func NewHistorialPrecioRepository(db *gorm.DB) HistorialPrecioRepository {
	return &historialPrecioRepo{db: db}
}

func (r *historialPrecioRepo) Create(ctx context.Context, h *model.HistorialPrecio) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// ListByProducto returns the price log for one product, newest first
// (append-only table, so this reflects natural insert order).
func (r *historialPrecioRepo) ListByProducto(ctx context.Context, productoID uuid.UUID) ([]model.HistorialPrecio, error) {
	var rows []model.HistorialPrecio
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
