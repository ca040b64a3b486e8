package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
)

func buildOrderUseCase() (*OrderUseCase, *fakeOrderRepo, *fakeClientRepo) {
	orders := newFakeOrderRepo()
	clients := newFakeClientRepo()
	_ = clients.Create(&entity.Client{ID: "cli-1", CompanyID: "empresa-a", Name: "Cliente Uno", Email: "uno@cliente.test"})
	return NewOrderUseCase(orders, clients), orders, clients
}

func TestOrderUseCase_NaceEnDraft(t *testing.T) {
	uc, _, _ := buildOrderUseCase()

	out, err := uc.Create("empresa-a", dto.CreateOrderRequest{ClientID: "cli-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDraft, out.Status)
	assert.Nil(t, out.ShippedDate)
	assert.Nil(t, out.DeliveredDate)
}

func TestOrderUseCase_ClienteDeOtraEmpresa(t *testing.T) {
	uc, _, _ := buildOrderUseCase()

	_, err := uc.Create("empresa-b", dto.CreateOrderRequest{ClientID: "cli-1"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUseCase_CicloCompletoSellaFechas(t *testing.T) {
	uc, _, _ := buildOrderUseCase()
	created, err := uc.Create("empresa-a", dto.CreateOrderRequest{ClientID: "cli-1"})
	require.NoError(t, err)

	out, err := uc.UpdateStatus("empresa-a", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderConfirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, out.Status)

	out, err = uc.UpdateStatus("empresa-a", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderShipped})
	require.NoError(t, err)
	require.NotNil(t, out.ShippedDate)
	assert.WithinDuration(t, time.Now(), *out.ShippedDate, time.Second)

	out, err = uc.UpdateStatus("empresa-a", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderDelivered})
	require.NoError(t, err)
	require.NotNil(t, out.DeliveredDate)
}

func TestOrderUseCase_TransicionInvalida(t *testing.T) {
	uc, orders, _ := buildOrderUseCase()
	created, err := uc.Create("empresa-a", dto.CreateOrderRequest{ClientID: "cli-1"})
	require.NoError(t, err)

	// Draft no puede saltar directo a Shipped.
	_, err = uc.UpdateStatus("empresa-a", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderShipped})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, _ := orders.GetByID(created.ID)
	assert.Equal(t, entity.OrderDraft, stored.Status)
}

func TestOrderUseCase_NoSeCancelaDespuesDeShipped(t *testing.T) {
	uc, _, _ := buildOrderUseCase()
	created, err := uc.Create("empresa-a", dto.CreateOrderRequest{ClientID: "cli-1"})
	require.NoError(t, err)
	_, err = uc.UpdateStatus("empresa-a", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderConfirmed})
	require.NoError(t, err)
	_, err = uc.UpdateStatus("empresa-a", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderShipped})
	require.NoError(t, err)

	_, err = uc.UpdateStatus("empresa-a", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderCancelled})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderUseCase_EstadoDesconocido(t *testing.T) {
	uc, _, _ := buildOrderUseCase()
	created, err := uc.Create("empresa-a", dto.CreateOrderRequest{ClientID: "cli-1"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus("empresa-a", created.ID, dto.UpdateOrderStatusRequest{Status: "Perdida"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUseCase_OrdenDeOtraEmpresaEsInexistente(t *testing.T) {
	uc, _, _ := buildOrderUseCase()
	created, err := uc.Create("empresa-a", dto.CreateOrderRequest{ClientID: "cli-1"})
	require.NoError(t, err)

	_, err = uc.GetByID("empresa-b", created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
