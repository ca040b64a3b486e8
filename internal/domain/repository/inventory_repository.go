package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para existencias (bodega × lote).
type InventoryRepository interface {
	// Add acumula cantidad del lote en la bodega (upsert sobre el par único).
	Add(warehouseID, lotID string, quantity decimal.Decimal) error
	// Remove descuenta cantidad; devuelve domain.ErrInsufficientStock si no alcanza.
	Remove(warehouseID, lotID string, quantity decimal.Decimal) error
	ListByWarehouse(warehouseID string) ([]*entity.Inventory, error)
}
