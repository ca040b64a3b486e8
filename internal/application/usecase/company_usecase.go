package usecase

import (
	"time"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/authz"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

// CompanyUseCase consulta y aprobación de empresas. El alta vive en el caso
// de uso de auth (registro público transaccional).
type CompanyUseCase struct {
	repo   repository.CompanyRepository
	window time.Duration // vigencia otorgada al aprobar
	now    func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, window time.Duration) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, window: window, now: time.Now}
}

// Approve activa la empresa. Solo el superusuario. La aprobación reinicia la
// ventana de vigencia desde ahora, por lo que también sirve de re-aprobación
// para una empresa vencida.
func (uc *CompanyUseCase) Approve(actor authz.Actor, id string) (*dto.CompanyResponse, error) {
	if err := authz.Decide(actor, authz.OpApproveCompany, authz.Target{}); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.IsActive = true
	company.ExpirationDate = uc.now().Add(uc.window)
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// GetByID obtiene una empresa. Un actor no superusuario solo ve la suya.
func (uc *CompanyUseCase) GetByID(actor authz.Actor, id string) (*dto.CompanyResponse, error) {
	if !actor.IsSuperuser && actor.CompanyID != id {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// List lista empresas con paginación. Solo superusuario.
func (uc *CompanyUseCase) List(actor authz.Actor, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	if err := authz.Decide(actor, authz.OpListCompanies, authz.Target{}); err != nil {
		return nil, err
	}
	page.DefaultPage()
	companies, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		Domain:         c.Domain,
		Email:          c.Email,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		ExpirationDate: c.ExpirationDate,
	}
}
