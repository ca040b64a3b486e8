package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
)

// BatchRepository puerto de persistencia para lotes de producción.
type BatchRepository interface {
	Create(batch *entity.ProductBatch) error
	GetByID(id string) (*entity.ProductBatch, error)
	ListByOrder(orderID string) ([]*entity.ProductBatch, error)
	// AddConsumption acumula consumo de un lote de material (upsert sobre el par único).
	AddConsumption(productBatchID, lotID string, quantity decimal.Decimal) error
	ListConsumption(productBatchID string) ([]*entity.BatchConsumption, error)
	// IncrementProduced suma cantidad producida al lote de producción.
	IncrementProduced(id string, quantity decimal.Decimal) error
}
