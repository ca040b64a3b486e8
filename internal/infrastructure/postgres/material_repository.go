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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	db Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materiales.
func NewMaterialRepository(db Querier) *MaterialRepo {
	return &MaterialRepo{db: db}
}

// Create persiste un material. (company_id, name) tiene constraint único.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (id, company_id, name, unit, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		material.ID, material.CompanyID, material.Name, material.Unit, material.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT id, company_id, name, unit, created_at FROM materials WHERE id = $1`
	var m entity.Material
	err := r.db.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.CompanyID, &m.Name, &m.Unit, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material by id: %w", err)
	}
	return &m, nil
}

// ListByCompany lista los materiales de una empresa.
func (r *MaterialRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error) {
	query := `
		SELECT id, company_id, name, unit, created_at FROM materials
		WHERE company_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var out []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Name, &m.Unit, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
