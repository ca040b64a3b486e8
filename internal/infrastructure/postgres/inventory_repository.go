package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// Una fila por par (warehouse, lot) con constraint único.
type InventoryRepo struct {
	db Querier
}

// NewInventoryRepository construye el adaptador de persistencia para existencias.
func NewInventoryRepository(db Querier) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// Add acumula cantidad del lote en la bodega. El upsert sobre el par único
// crea la fila la primera vez y acumula las siguientes.
func (r *InventoryRepo) Add(warehouseID, lotID string, quantity decimal.Decimal) error {
	query := `
		INSERT INTO inventories (id, warehouse_id, lot_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (warehouse_id, lot_id)
		DO UPDATE SET quantity = inventories.quantity + EXCLUDED.quantity`
	_, err := r.db.Exec(context.Background(), query, uuid.New().String(), warehouseID, lotID, quantity)
	if err != nil {
		return fmt.Errorf("add inventory: %w", err)
	}
	return nil
}

// Remove descuenta cantidad del lote en la bodega. El guard en el WHERE hace
// chequeo y descuento atómicos; cero filas significa saldo insuficiente.
func (r *InventoryRepo) Remove(warehouseID, lotID string, quantity decimal.Decimal) error {
	query := `
		UPDATE inventories
		SET quantity = quantity - $3
		WHERE warehouse_id = $1 AND lot_id = $2 AND quantity >= $3`
	tag, err := r.db.Exec(context.Background(), query, warehouseID, lotID, quantity)
	if err != nil {
		return fmt.Errorf("remove inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// ListByWarehouse lista las existencias de una bodega.
func (r *InventoryRepo) ListByWarehouse(warehouseID string) ([]*entity.Inventory, error) {
	query := `
		SELECT id, warehouse_id, lot_id, quantity FROM inventories
		WHERE warehouse_id = $1 AND quantity > 0
		ORDER BY lot_id`
	rows, err := r.db.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var out []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.WarehouseID, &inv.LotID, &inv.Quantity); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}
