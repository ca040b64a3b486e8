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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	db Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(db Querier) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `id, company_id, client_id, status, order_date, shipped_date, delivered_date`

// Create persiste una orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.ClientID, order.Status,
		order.OrderDate, order.ShippedDate, order.DeliveredDate,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.ClientID, &o.Status, &o.OrderDate, &o.ShippedDate, &o.DeliveredDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return &o, nil
}

// Update actualiza estado y fechas de una orden.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, shipped_date = $3, delivered_date = $4
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		order.ID, order.Status, order.ShippedDate, order.DeliveredDate,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista las órdenes de una empresa.
func (r *OrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE company_id = $1
		ORDER BY order_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.ClientID, &o.Status,
			&o.OrderDate, &o.ShippedDate, &o.DeliveredDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
