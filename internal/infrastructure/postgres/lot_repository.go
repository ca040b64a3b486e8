package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL.
type LotRepo struct {
	db Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes.
func NewLotRepository(db Querier) *LotRepo {
	return &LotRepo{db: db}
}

const lotColumns = `id, supplier_id, material_id, quantity_received, quantity_remaining, received_at, expiration`

// Create persiste un lote recibido.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		lot.ID, lot.SupplierID, lot.MaterialID, lot.QuantityReceived,
		lot.QuantityRemaining, lot.ReceivedAt, lot.Expiration,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	var l entity.Lot
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.SupplierID, &l.MaterialID, &l.QuantityReceived,
		&l.QuantityRemaining, &l.ReceivedAt, &l.Expiration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot by id: %w", err)
	}
	return &l, nil
}

// ListByCompany lista los lotes de una empresa, resueltos vía sus proveedores.
func (r *LotRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Lot, error) {
	query := `
		SELECT l.id, l.supplier_id, l.material_id, l.quantity_received,
		       l.quantity_remaining, l.received_at, l.expiration
		FROM lots l
		JOIN suppliers s ON s.id = l.supplier_id
		WHERE s.company_id = $1
		ORDER BY l.received_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var out []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.SupplierID, &l.MaterialID, &l.QuantityReceived,
			&l.QuantityRemaining, &l.ReceivedAt, &l.Expiration); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// DecrementRemaining descuenta cantidad del lote. El WHERE con el guard de
// cantidad hace el chequeo y el descuento en una sola sentencia atómica;
// cero filas afectadas significa lote inexistente o sin saldo suficiente.
func (r *LotRepo) DecrementRemaining(id string, quantity decimal.Decimal) error {
	query := `
		UPDATE lots
		SET quantity_remaining = quantity_remaining - $2
		WHERE id = $1 AND quantity_remaining >= $2`
	tag, err := r.db.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("decrement lot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
