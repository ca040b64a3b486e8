package repository

import "github.com/tu-usuario/fabrica-pro/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error)
}
