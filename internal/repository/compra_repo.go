package repository

import (
	"context"

	"zapastock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraRepository interface {
	// RegistrarAtomico creates the purchase with its detalles, increments
	// stock for every line and appends entrada movements, in one transaction.
	RegistrarAtomico(ctx context.Context, c *model.CompraMayorista, movs []model.MovimientoStock) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.CompraMayorista, error)
	List(ctx context.Context) ([]model.CompraMayorista, error)
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) RegistrarAtomico(ctx context.Context, c *model.CompraMayorista, movs []model.MovimientoStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		for _, det := range c.Detalles {
			if err := tx.Model(&model.Producto{}).
				Where("id = ?", det.ProductoID).
				Update("stock_actual", gorm.Expr("stock_actual + ?", det.Cantidad)).Error; err != nil {
				return err
			}
		}
		for i := range movs {
			movs[i].ReferenciaID = &c.ID
			if err := tx.Create(&movs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CompraMayorista, error) {
	var c model.CompraMayorista
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Detalles.Producto").
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *compraRepo) List(ctx context.Context) ([]model.CompraMayorista, error) {
	var compras []model.CompraMayorista
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Detalles.Producto").
		Order("fecha DESC").
		Find(&compras).Error
	return compras, err
}
