package repository

import (
	"context"

	"zapastock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EncargueRepository interface {
	Create(ctx context.Context, e *model.EncargueProveedor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.EncargueProveedor, error)
	List(ctx context.Context) ([]model.EncargueProveedor, error)

	// MarcarRecibidoAtomico flips the order to recibido, increments stock for
	// every detalle and appends entrada movements, in one transaction.
	MarcarRecibidoAtomico(ctx context.Context, e *model.EncargueProveedor, movs []model.MovimientoStock) error
}

type encargueRepo struct{ db *gorm.DB }

func NewEncargueRepository(db *gorm.DB) EncargueRepository { return &encargueRepo{db: db} }

func (r *encargueRepo) Create(ctx context.Context, e *model.EncargueProveedor) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *encargueRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.EncargueProveedor, error) {
	var e model.EncargueProveedor
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Detalles.Producto").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *encargueRepo) List(ctx context.Context) ([]model.EncargueProveedor, error) {
	var encargues []model.EncargueProveedor
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Detalles.Producto").
		Order("fecha DESC").
		Find(&encargues).Error
	return encargues, err
}

func (r *encargueRepo) MarcarRecibidoAtomico(ctx context.Context, e *model.EncargueProveedor, movs []model.MovimientoStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.EncargueProveedor{}).
			Where("id = ?", e.ID).
			Update("estado", model.EstadoEncargueRecibido).Error; err != nil {
			return err
		}
		for _, det := range e.Detalles {
			if err := tx.Model(&model.Producto{}).
				Where("id = ?", det.ProductoID).
				Update("stock_actual", gorm.Expr("stock_actual + ?", det.Cantidad)).Error; err != nil {
				return err
			}
		}
		for i := range movs {
			movs[i].ReferenciaID = &e.ID
			if err := tx.Create(&movs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
