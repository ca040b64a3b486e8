package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/authz"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

// UserUseCase altas, bajas y cambio de contraseña de usuarios, gobernados por
// la tabla de permisos de authz.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario. El superusuario elige empresa; un admin crea solo
// dentro de la suya: la empresa de la petición se ignora y se fuerza la del
// actor. Cualquier otro rol recibe ErrForbidden.
func (uc *UserUseCase) Create(actor authz.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	companyID := authz.ScopeCompanyID(actor, in.CompanyID)
	if err := authz.Decide(actor, authz.OpCreateUser, authz.Target{CompanyID: companyID}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Username) == "" || companyID == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// Delete elimina un usuario: superusuario cualquiera, admin solo de su empresa.
func (uc *UserUseCase) Delete(actor authz.Actor, id string) error {
	target, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	if err := authz.Decide(actor, authz.OpDeleteUser, authz.Target{UserID: target.ID, CompanyID: target.CompanyID}); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// UpdatePassword cambia la contraseña del usuario target. Permitido para el
// superusuario, un admin de la misma empresa, o el propio usuario.
func (uc *UserUseCase) UpdatePassword(actor authz.Actor, id string, in dto.UpdatePasswordRequest) error {
	target, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	if err := authz.Decide(actor, authz.OpUpdatePassword, authz.Target{UserID: target.ID, CompanyID: target.CompanyID}); err != nil {
		return err
	}
	if len(in.Password) < 8 {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(id, string(hash))
}

// List lista los usuarios de una empresa. El superusuario puede elegir
// empresa; el admin queda acotado a la suya.
func (uc *UserUseCase) List(actor authz.Actor, requestedCompanyID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	companyID := authz.ScopeCompanyID(actor, requestedCompanyID)
	if err := authz.Decide(actor, authz.OpListUsers, authz.Target{CompanyID: companyID}); err != nil {
		return nil, err
	}
	page.DefaultPage()
	users, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
