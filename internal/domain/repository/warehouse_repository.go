package repository

import "github.com/tu-usuario/fabrica-pro/internal/domain/entity"

// WarehouseRepository puerto de persistencia para bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	ListByCompany(companyID string) ([]*entity.Warehouse, error)
}
