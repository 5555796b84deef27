package repository

import (
	"context"

	"zapastock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error

	CrearDeuda(ctx context.Context, d *model.Deuda) error
	FindDeuda(ctx context.Context, id uuid.UUID) (*model.Deuda, error)
	ListDeudas(ctx context.Context, clienteID uuid.UUID) ([]model.Deuda, error)
	ListDeudasPendientes(ctx context.Context) ([]model.Deuda, error)
	UpdateDeuda(ctx context.Context, d *model.Deuda) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Deudas").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) CrearDeuda(ctx context.Context, d *model.Deuda) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *clienteRepo) FindDeuda(ctx context.Context, id uuid.UUID) (*model.Deuda, error) {
	var d model.Deuda
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *clienteRepo) ListDeudas(ctx context.Context, clienteID uuid.UUID) ([]model.Deuda, error) {
	var deudas []model.Deuda
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("fecha DESC").
		Find(&deudas).Error
	return deudas, err
}

func (r *clienteRepo) ListDeudasPendientes(ctx context.Context) ([]model.Deuda, error) {
	var deudas []model.Deuda
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Where("pagado = false").
		Order("fecha_limite_pago ASC NULLS LAST").
		Find(&deudas).Error
	return deudas, err
}

func (r *clienteRepo) UpdateDeuda(ctx context.Context, d *model.Deuda) error {
	return r.db.WithContext(ctx).Save(d).Error
}
