package repository

import "github.com/tu-usuario/fabrica-pro/internal/domain/entity"

// ItemRepository puerto de persistencia para items serializados.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetBySerial(serialNumber string) (*entity.Item, error)
	ListByBatch(productBatchID string) ([]*entity.Item, error)
}
