package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

// OrderUseCase ciclo de vida de las órdenes de clientes.
type OrderUseCase struct {
	orders  repository.OrderRepository
	clients repository.ClientRepository
	now     func() time.Time
}

// NewOrderUseCase construye el caso de uso con los puertos de persistencia.
func NewOrderUseCase(orders repository.OrderRepository, clients repository.ClientRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, clients: clients, now: time.Now}
}

// Create crea una orden en estado Draft para un cliente de la empresa.
func (uc *OrderUseCase) Create(companyID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	order := &entity.Order{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ClientID:  in.ClientID,
		Status:    entity.OrderDraft,
		OrderDate: uc.now(),
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus transiciona la orden según la tabla del ciclo de vida. Una
// transición no permitida devuelve ErrInvalidTransition; Shipped y Delivered
// sellan sus fechas al aplicarse.
func (uc *OrderUseCase) UpdateStatus(companyID, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	switch in.Status {
	case entity.OrderDraft, entity.OrderConfirmed, entity.OrderShipped, entity.OrderDelivered, entity.OrderCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.scoped(companyID, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(order.Status, in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = in.Status
	now := uc.now()
	switch in.Status {
	case entity.OrderShipped:
		order.ShippedDate = &now
	case entity.OrderDelivered:
		order.DeliveredDate = &now
	}
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden de la empresa; otros tenants ven ErrNotFound.
func (uc *OrderUseCase) GetByID(companyID, id string) (*dto.OrderResponse, error) {
	order, err := uc.scoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista las órdenes de la empresa con paginación.
func (uc *OrderUseCase) List(companyID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orders.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *OrderUseCase) scoped(companyID, id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:            o.ID,
		CompanyID:     o.CompanyID,
		ClientID:      o.ClientID,
		Status:        o.Status,
		OrderDate:     o.OrderDate,
		ShippedDate:   o.ShippedDate,
		DeliveredDate: o.DeliveredDate,
	}
}
