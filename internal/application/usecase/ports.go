package usecase

import (
	"context"

	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

// InventoryTxRunner ejecuta operaciones de inventario multi-tabla en una
// transacción (recepción de lote, traslado entre bodegas).
type InventoryTxRunner interface {
	RunInventory(ctx context.Context, fn func(
		lots repository.LotRepository,
		inventory repository.InventoryRepository,
	) error) error
}

// ProductionTxRunner ejecuta el consumo de lotes de un lote de producción en
// una transacción: descuento del lote, descuento de inventario y registro del
// consumo, o nada.
type ProductionTxRunner interface {
	RunProduction(ctx context.Context, fn func(
		lots repository.LotRepository,
		inventory repository.InventoryRepository,
		batches repository.BatchRepository,
	) error) error
}
