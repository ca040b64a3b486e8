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

// MaterialUseCase altas y consultas de materias primas de una empresa.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso con el puerto de persistencia.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create crea un material. El nombre es único por empresa.
func (uc *MaterialUseCase) Create(companyID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Unit) == "" {
		return nil, domain.ErrInvalidInput
	}
	material := &entity.Material{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Unit:      in.Unit,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID obtiene un material de la empresa; otros tenants ven ErrNotFound.
func (uc *MaterialUseCase) GetByID(companyID, id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil || material.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(material), nil
}

// List lista los materiales de la empresa con paginación.
func (uc *MaterialUseCase) List(companyID string, page dto.PageRequest) (*dto.MaterialListResponse, error) {
	page.DefaultPage()
	materials, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		Name:      m.Name,
		Unit:      m.Unit,
		CreatedAt: m.CreatedAt,
	}
}
