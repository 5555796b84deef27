package service

import (
	"context"
	"testing"

	"zapastock/internal/dto"
	"zapastock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeuda_PagarMarcaFecha(t *testing.T) {
	repo := newClienteRepoStub()
	svc := NewClienteService(repo)

	cliente, err := svc.Crear(context.Background(), dto.CrearClienteRequest{Nombre: "Marta Gomez"})
	require.NoError(t, err)

	limite := "2026-09-15"
	deuda, err := svc.CrearDeuda(context.Background(), cliente.ID, dto.CrearDeudaRequest{
		Monto:           decimal.NewFromInt(15000),
		FechaLimitePago: &limite,
	})
	require.NoError(t, err)
	assert.False(t, deuda.Pagado)
	require.NotNil(t, deuda.FechaLimitePago)
	assert.Equal(t, "2026-09-15", deuda.FechaLimitePago.Format("2006-01-02"))

	pagada, err := svc.PagarDeuda(context.Background(), deuda.ID)
	require.NoError(t, err)
	assert.True(t, pagada.Pagado)
	require.NotNil(t, pagada.FechaPago)

	_, err = svc.PagarDeuda(context.Background(), deuda.ID)
	require.ErrorIs(t, err, ErrDeudaYaPagada)
}

func TestDeuda_ClienteInexistente(t *testing.T) {
	svc := NewClienteService(newClienteRepoStub())

	_, err := svc.CrearDeuda(context.Background(), uuid.New(), dto.CrearDeudaRequest{
		Monto: decimal.NewFromInt(1000),
	})
	require.ErrorIs(t, err, ErrClienteNoEncontrado)
}

func TestDeuda_PendientesExcluyePagadas(t *testing.T) {
	repo := newClienteRepoStub()
	svc := NewClienteService(repo)

	cliente := &model.Cliente{ID: uuid.New(), Nombre: "Marta Gomez"}
	repo.clientes[cliente.ID] = cliente

	d1, err := svc.CrearDeuda(context.Background(), cliente.ID, dto.CrearDeudaRequest{Monto: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	_, err = svc.CrearDeuda(context.Background(), cliente.ID, dto.CrearDeudaRequest{Monto: decimal.NewFromInt(2000)})
	require.NoError(t, err)

	_, err = svc.PagarDeuda(context.Background(), d1.ID)
	require.NoError(t, err)

	pendientes, err := svc.DeudasPendientes(context.Background())
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, "2000.00", pendientes[0].Monto.StringFixed(2))
}
