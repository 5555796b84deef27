package service

import (
	"context"
	"errors"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorService struct {
	proveedores repository.ProveedorRepository
}

func NewProveedorService(proveedores repository.ProveedorRepository) *ProveedorService {
	return &ProveedorService{proveedores: proveedores}
}

func (s *ProveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	p := &model.Proveedor{
		Nombre:      req.Nombre,
		Contacto:    req.Contacto,
		Descripcion: req.Descripcion,
	}
	if err := s.proveedores.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProveedorService) Obtener(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *ProveedorService) Listar(ctx context.Context) ([]model.Proveedor, error) {
	return s.proveedores.List(ctx)
}

func (s *ProveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNoEncontrado
		}
		return nil, err
	}
	p.Nombre = req.Nombre
	p.Contacto = req.Contacto
	p.Descripcion = req.Descripcion
	if err := s.proveedores.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Eliminar removes a supplier. The default supplier and suppliers with
// associated products cannot be deleted.
func (s *ProveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProveedorNoEncontrado
		}
		return err
	}
	if p.PorDefecto {
		return ErrProveedorPorDefecto
	}
	count, err := s.proveedores.ContarProductos(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProveedorConProductos
	}
	return s.proveedores.Delete(ctx, id)
}
