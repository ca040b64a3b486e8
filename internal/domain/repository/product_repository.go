package repository

import "github.com/tu-usuario/fabrica-pro/internal/domain/entity"

// ProductRepository puerto de persistencia para productos y su BOM.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	// ReplaceBOM reemplaza la lista de materiales completa del producto.
	ReplaceBOM(productID string, lines []*entity.BOMLine) error
	GetBOM(productID string) ([]*entity.BOMLine, error)
}
