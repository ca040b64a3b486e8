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

// ClientUseCase CRUD de clientes, acotado a la empresa del actor.
// Misma forma que proveedores; destinatarios de las órdenes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. (name, email) es único por empresa.
func (uc *ClientUseCase) Create(companyID string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
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
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return clientToPartner(client), nil
}

// GetByID obtiene un cliente de la empresa; otros tenants ven ErrNotFound.
func (uc *ClientUseCase) GetByID(companyID, id string) (*dto.PartnerResponse, error) {
	client, err := uc.scoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return clientToPartner(client), nil
}

// Update actualiza los datos de contacto de un cliente de la empresa.
func (uc *ClientUseCase) Update(companyID, id string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	client, err := uc.scoped(companyID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	client.Name = in.Name
	client.Address = in.Address
	client.Phone = in.Phone
	client.Email = in.Email
	client.Website = in.Website
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return clientToPartner(client), nil
}

// List lista los clientes de la empresa con paginación.
func (uc *ClientUseCase) List(companyID string, page dto.PageRequest) (*dto.PartnerListResponse, error) {
	page.DefaultPage()
	clients, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, *clientToPartner(c))
	}
	return &dto.PartnerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un cliente de la empresa.
func (uc *ClientUseCase) Delete(companyID, id string) error {
	if _, err := uc.scoped(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *ClientUseCase) scoped(companyID, id string) (*entity.Client, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func clientToPartner(c *entity.Client) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Website:   c.Website,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
