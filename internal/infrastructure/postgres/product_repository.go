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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Incluye la lista de materiales (bom_lines) del producto.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un producto. (company_id, name) tiene constraint único.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, name, unit, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.Name, product.Unit, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT id, company_id, name, unit, created_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.CompanyID, &p.Name, &p.Unit, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los productos de una empresa.
func (r *ProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, company_id, name, unit, created_at FROM products
		WHERE company_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Unit, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// ReplaceBOM reemplaza la lista de materiales completa del producto:
// borra las líneas existentes e inserta las nuevas.
func (r *ProductRepo) ReplaceBOM(productID string, lines []*entity.BOMLine) error {
	ctx := context.Background()
	if _, err := r.db.Exec(ctx, `DELETE FROM bom_lines WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear bom: %w", err)
	}
	query := `
		INSERT INTO bom_lines (id, product_id, material_id, quantity)
		VALUES ($1, $2, $3, $4)`
	for _, l := range lines {
		if _, err := r.db.Exec(ctx, query, l.ID, l.ProductID, l.MaterialID, l.Quantity); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert bom line: %w", err)
		}
	}
	return nil
}

// GetBOM obtiene la lista de materiales del producto.
func (r *ProductRepo) GetBOM(productID string) ([]*entity.BOMLine, error) {
	query := `
		SELECT id, product_id, material_id, quantity FROM bom_lines
		WHERE product_id = $1
		ORDER BY material_id`
	rows, err := r.db.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("get bom: %w", err)
	}
	defer rows.Close()

	var out []*entity.BOMLine
	for rows.Next() {
		var l entity.BOMLine
		if err := rows.Scan(&l.ID, &l.ProductID, &l.MaterialID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan bom line: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
