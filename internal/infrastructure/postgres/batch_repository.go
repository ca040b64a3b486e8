package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL.
// Incluye los consumos de material (batch_consumptions) del lote de producción.
type BatchRepo struct {
	db Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes de producción.
func NewBatchRepository(db Querier) *BatchRepo {
	return &BatchRepo{db: db}
}

const batchColumns = `id, warehouse_id, product_id, order_id, ordered_quantity, produced_quantity`

// Create persiste un lote de producción.
func (r *BatchRepo) Create(batch *entity.ProductBatch) error {
	query := `
		INSERT INTO product_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		batch.ID, batch.WarehouseID, batch.ProductID, batch.OrderID,
		batch.OrderedQuantity, batch.ProducedQuantity,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote de producción por ID.
func (r *BatchRepo) GetByID(id string) (*entity.ProductBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM product_batches WHERE id = $1`
	var b entity.ProductBatch
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.WarehouseID, &b.ProductID, &b.OrderID, &b.OrderedQuantity, &b.ProducedQuantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch by id: %w", err)
	}
	return &b, nil
}

// ListByOrder lista los lotes de producción de una orden.
func (r *BatchRepo) ListByOrder(orderID string) ([]*entity.ProductBatch, error) {
	query := `
		SELECT ` + batchColumns + ` FROM product_batches
		WHERE order_id = $1
		ORDER BY id`
	rows, err := r.db.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductBatch
	for rows.Next() {
		var b entity.ProductBatch
		if err := rows.Scan(&b.ID, &b.WarehouseID, &b.ProductID, &b.OrderID,
			&b.OrderedQuantity, &b.ProducedQuantity); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// AddConsumption acumula consumo de un lote de material. El upsert sobre el
// par único (product_batch, lot) crea la fila la primera vez y acumula las
// siguientes.
func (r *BatchRepo) AddConsumption(productBatchID, lotID string, quantity decimal.Decimal) error {
	query := `
		INSERT INTO batch_consumptions (id, product_batch_id, lot_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_batch_id, lot_id)
		DO UPDATE SET quantity = batch_consumptions.quantity + EXCLUDED.quantity`
	_, err := r.db.Exec(context.Background(), query, uuid.New().String(), productBatchID, lotID, quantity)
	if err != nil {
		return fmt.Errorf("add consumption: %w", err)
	}
	return nil
}

// ListConsumption lista los consumos acumulados del lote de producción.
func (r *BatchRepo) ListConsumption(productBatchID string) ([]*entity.BatchConsumption, error) {
	query := `
		SELECT id, product_batch_id, lot_id, quantity FROM batch_consumptions
		WHERE product_batch_id = $1
		ORDER BY lot_id`
	rows, err := r.db.Query(context.Background(), query, productBatchID)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	defer rows.Close()

	var out []*entity.BatchConsumption
	for rows.Next() {
		var c entity.BatchConsumption
		if err := rows.Scan(&c.ID, &c.ProductBatchID, &c.LotID, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// IncrementProduced suma cantidad producida al lote de producción.
func (r *BatchRepo) IncrementProduced(id string, quantity decimal.Decimal) error {
	query := `
		UPDATE product_batches
		SET produced_quantity = produced_quantity + $2
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("increment produced: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
