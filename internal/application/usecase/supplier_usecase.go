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

// SupplierUseCase CRUD de proveedores, acotado a la empresa del actor.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso con el puerto de persistencia.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. (name, email) es único por empresa.
func (uc *SupplierUseCase) Create(companyID string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Website:   in.Website,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplierToPartner(supplier), nil
}

// GetByID obtiene un proveedor de la empresa. Un proveedor de otra empresa se
// reporta como inexistente para no filtrar información entre tenants.
func (uc *SupplierUseCase) GetByID(companyID, id string) (*dto.PartnerResponse, error) {
	supplier, err := uc.scoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return supplierToPartner(supplier), nil
}

// Update actualiza los datos de contacto de un proveedor de la empresa.
func (uc *SupplierUseCase) Update(companyID, id string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	supplier, err := uc.scoped(companyID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier.Name = in.Name
	supplier.Address = in.Address
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.Website = in.Website
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return supplierToPartner(supplier), nil
}

// List lista los proveedores de la empresa con paginación.
func (uc *SupplierUseCase) List(companyID string, page dto.PageRequest) (*dto.PartnerListResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, *supplierToPartner(s))
	}
	return &dto.PartnerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un proveedor de la empresa.
func (uc *SupplierUseCase) Delete(companyID, id string) error {
	if _, err := uc.scoped(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *SupplierUseCase) scoped(companyID, id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

func supplierToPartner(s *entity.Supplier) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		Website:   s.Website,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
