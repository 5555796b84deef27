package service

import (
	"context"
	"errors"
	"time"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteService struct {
	clientes repository.ClienteRepository
}

func NewClienteService(clientes repository.ClienteRepository) *ClienteService {
	return &ClienteService{clientes: clientes}
}

func (s *ClienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	c := &model.Cliente{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Email:    req.Email,
	}
	if err := s.clientes.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}
	return c, nil
}

func (s *ClienteService) Listar(ctx context.Context) ([]model.Cliente, error) {
	return s.clientes.List(ctx)
}

func (s *ClienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearClienteRequest) (*model.Cliente, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}
	c.Nombre = req.Nombre
	c.Telefono = req.Telefono
	c.Email = req.Email
	if err := s.clientes.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ─── Deudas ──────────────────────────────────────────────────────────────────

func (s *ClienteService) CrearDeuda(ctx context.Context, clienteID uuid.UUID, req dto.CrearDeudaRequest) (*model.Deuda, error) {
	if _, err := s.clientes.FindByID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}

	d := &model.Deuda{
		ClienteID:   clienteID,
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
		Fecha:       time.Now(),
	}
	if req.FechaLimitePago != nil {
		limite, err := time.Parse("2006-01-02", *req.FechaLimitePago)
		if err == nil {
			d.FechaLimitePago = &limite
		}
	}

	if err := s.clientes.CrearDeuda(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *ClienteService) ListarDeudas(ctx context.Context, clienteID uuid.UUID) ([]model.Deuda, error) {
	if _, err := s.clientes.FindByID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}
	return s.clientes.ListDeudas(ctx, clienteID)
}

func (s *ClienteService) DeudasPendientes(ctx context.Context) ([]model.Deuda, error) {
	return s.clientes.ListDeudasPendientes(ctx)
}

// PagarDeuda marks a debt as paid with the current timestamp. Paying an
// already-paid debt returns ErrDeudaYaPagada.
func (s *ClienteService) PagarDeuda(ctx context.Context, deudaID uuid.UUID) (*model.Deuda, error) {
	d, err := s.clientes.FindDeuda(ctx, deudaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeudaNoEncontrada
		}
		return nil, err
	}
	if d.Pagado {
		return nil, ErrDeudaYaPagada
	}

	ahora := time.Now()
	d.Pagado = true
	d.FechaPago = &ahora
	if err := s.clientes.UpdateDeuda(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
