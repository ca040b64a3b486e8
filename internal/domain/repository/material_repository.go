package repository

import "github.com/tu-usuario/fabrica-pro/internal/domain/entity"

// MaterialRepository puerto de persistencia para materiales.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error)
}
