package repository

import (
	"context"
	"fmt"

	"zapastock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStockInsuficiente signals that a sale would leave a product below zero.
// The guard runs inside the transaction, so concurrent sales cannot oversell.
var ErrStockInsuficiente = fmt.Errorf("stock insuficiente")

type VentaRepository interface {
	// RegistrarAtomico creates the sale with its detalles, decrements stock
	// for every line with an in-database guard and appends salida movements.
	// Returns ErrStockInsuficiente (wrapped) when any line cannot be covered.
	RegistrarAtomico(ctx context.Context, v *model.VentaLocal, movs []model.MovimientoStock) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.VentaLocal, error)
	List(ctx context.Context) ([]model.VentaLocal, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) RegistrarAtomico(ctx context.Context, v *model.VentaLocal, movs []model.MovimientoStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		for _, det := range v.Detalles {
			res := tx.Model(&model.Producto{}).
				Where("id = ? AND stock_actual >= ?", det.ProductoID, det.Cantidad).
				Update("stock_actual", gorm.Expr("stock_actual - ?", det.Cantidad))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("producto %s: %w", det.ProductoID, ErrStockInsuficiente)
			}
		}
		for i := range movs {
			movs[i].ReferenciaID = &v.ID
			if err := tx.Create(&movs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.VentaLocal, error) {
	var v model.VentaLocal
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles.Producto").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context) ([]model.VentaLocal, error) {
	var ventas []model.VentaLocal
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles.Producto").
		Order("fecha DESC").
		Find(&ventas).Error
	return ventas, err
}
