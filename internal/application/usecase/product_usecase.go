package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

// ProductUseCase altas y consultas de productos y su lista de materiales.
type ProductUseCase struct {
	products  repository.ProductRepository
	materials repository.MaterialRepository
}

// NewProductUseCase construye el caso de uso con los puertos de persistencia.
func NewProductUseCase(products repository.ProductRepository, materials repository.MaterialRepository) *ProductUseCase {
	return &ProductUseCase{products: products, materials: materials}
}

// Create crea un producto. El nombre es único por empresa.
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Unit) == "" {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Unit:      in.Unit,
		CreatedAt: time.Now(),
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la empresa; otros tenants ven ErrNotFound.
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.scoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos de la empresa con paginación.
func (uc *ProductUseCase) List(companyID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.products.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ReplaceBOM reemplaza la lista de materiales completa del producto. Cada
// material referenciado debe existir y pertenecer a la misma empresa, y cada
// cantidad debe ser positiva.
func (uc *ProductUseCase) ReplaceBOM(companyID, productID string, in dto.ReplaceBOMRequest) (*dto.BOMResponse, error) {
	product, err := uc.scoped(companyID, productID)
	if err != nil {
		return nil, err
	}
	lines := make([]*entity.BOMLine, 0, len(in.Lines))
	seen := make(map[string]bool, len(in.Lines))
	for _, l := range in.Lines {
		qty, err := parseQuantity(l.Quantity)
		if err != nil {
			return nil, err
		}
		if seen[l.MaterialID] {
			return nil, domain.ErrInvalidInput
		}
		seen[l.MaterialID] = true
		material, err := uc.materials.GetByID(l.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil || material.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, &entity.BOMLine{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			MaterialID: l.MaterialID,
			Quantity:   qty,
		})
	}
	if err := uc.products.ReplaceBOM(product.ID, lines); err != nil {
		return nil, err
	}
	return toBOMResponse(product.ID, lines), nil
}

// GetBOM obtiene la lista de materiales del producto.
func (uc *ProductUseCase) GetBOM(companyID, productID string) (*dto.BOMResponse, error) {
	product, err := uc.scoped(companyID, productID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.products.GetBOM(product.ID)
	if err != nil {
		return nil, err
	}
	return toBOMResponse(product.ID, lines), nil
}

func (uc *ProductUseCase) scoped(companyID, id string) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Unit:      p.Unit,
		CreatedAt: p.CreatedAt,
	}
}

func toBOMResponse(productID string, lines []*entity.BOMLine) *dto.BOMResponse {
	out := &dto.BOMResponse{ProductID: productID, Lines: make([]dto.BOMLineResponse, 0, len(lines))}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.BOMLineResponse{
			MaterialID: l.MaterialID,
			Quantity:   l.Quantity.String(),
		})
	}
	return out
}
