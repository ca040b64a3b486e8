package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	db Querier
}

// NewItemRepository construye el adaptador de persistencia para items serializados.
func NewItemRepository(db Querier) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `id, serial_number, product_batch_id, operator_id, production_date`

// Create persiste un item. serial_number tiene constraint único global.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		item.ID, item.SerialNumber, item.ProductBatchID, item.OperatorID, item.ProductionDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetBySerial obtiene un item por su número de serie.
func (r *ItemRepo) GetBySerial(serialNumber string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE serial_number = $1`
	var i entity.Item
	err := r.db.QueryRow(context.Background(), query, serialNumber).Scan(
		&i.ID, &i.SerialNumber, &i.ProductBatchID, &i.OperatorID, &i.ProductionDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by serial: %w", err)
	}
	return &i, nil
}

// ListByBatch lista los items producidos de un lote de producción.
func (r *ItemRepo) ListByBatch(productBatchID string) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE product_batch_id = $1
		ORDER BY production_date`
	rows, err := r.db.Query(context.Background(), query, productBatchID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.SerialNumber, &i.ProductBatchID, &i.OperatorID, &i.ProductionDate); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}
