package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
	"github.com/tu-usuario/fabrica-pro/pkg/jwt"
	"github.com/tu-usuario/fabrica-pro/pkg/logger"
)

// Config parámetros de emisión de tokens y ciclo de vida de empresas.
type Config struct {
	JWTSecret      string
	AccessMinutes  int
	RefreshHours   int
	Issuer         string
	ApprovalWindow time.Duration // vigencia inicial de una empresa registrada
}

// AuthUseCase casos de uso de autenticación: login con verificación de
// empresa, canje de refresh y registro público de empresa + admin.
type AuthUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	tx        RegistrationTxRunner
	notifier  ApprovalNotifier
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. notifier puede ser nil
// (sin transporte de correo configurado).
func NewAuthUseCase(
	users repository.UserRepository,
	companies repository.CompanyRepository,
	tx RegistrationTxRunner,
	notifier ApprovalNotifier,
	cfg Config,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		companies: companies,
		tx:        tx,
		notifier:  notifier,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Login verifica la vigencia de la empresa y las credenciales, y emite el par
// access+refresh. El orden importa: primero la empresa, después el password.
//
// Devuelve domain.ErrCompanyNotEligible tanto para usuario inexistente como
// para empresa inactiva o vencida: la respuesta no debe permitir enumerar
// usuarios ni distinguir la causa. Los superusuarios no pasan por la
// verificación de empresa.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCompanyNotEligible
	}
	if !user.IsSuperuser {
		company, err := uc.companies.GetByID(user.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil || !company.EligibleForLogin(uc.now()) {
			return nil, domain.ErrCompanyNotEligible
		}
	}
	// bcrypt compara en tiempo constante.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	id := jwt.Identity{
		UserID:      user.ID,
		CompanyID:   user.CompanyID,
		Role:        user.Role,
		IsSuperuser: user.IsSuperuser,
	}
	access, err := jwt.GenerateAccess(uc.cfg.JWTSecret, id, uc.cfg.Issuer, uc.cfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.cfg.JWTSecret, id, uc.cfg.Issuer, uc.cfg.RefreshHours)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

// Refresh canjea un refresh token vigente por un nuevo access token.
//
// El canje no consulta el estado actual de la empresa: un refresh emitido
// sigue siendo canjeable aunque la empresa haya vencido después de su emisión.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.AccessTokenResponse, error) {
	claims, err := jwt.Parse(uc.cfg.JWTSecret, in.Refresh)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.TokenType != jwt.TypeRefresh {
		return nil, domain.ErrInvalidToken
	}
	access, err := jwt.GenerateAccess(uc.cfg.JWTSecret, jwt.Identity{
		UserID:      claims.UserID,
		CompanyID:   claims.CompanyID,
		Role:        claims.Role,
		IsSuperuser: claims.IsSuperuser,
	}, uc.cfg.Issuer, uc.cfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AccessTokenResponse{Access: access}, nil
}

// RegisterCompany registro público: crea la empresa (inactiva, con ventana de
// vigencia) y su usuario admin inicial en una sola transacción, y despacha el
// aviso de aprobación al operador sin esperar su resultado.
func (uc *AuthUseCase) RegisterCompany(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	if err := validateRegisterCompany(in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	company := &entity.Company{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Domain:         in.Domain,
		Email:          in.Email,
		IsActive:       false, // pendiente de aprobación del superusuario
		CreatedAt:      now,
		ExpirationDate: now.Add(uc.cfg.ApprovalWindow),
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Username:     in.AdminUsername,
		Email:        in.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.Run(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if err := companies.Create(company); err != nil {
			return err
		}
		return users.Create(admin)
	})
	if err != nil {
		return nil, err
	}

	uc.dispatchApprovalNotice(company)

	return &dto.RegisterCompanyResponse{
		Company: ToCompanyResponse(company),
		Admin:   ToUserResponse(admin),
	}, nil
}

// dispatchApprovalNotice envía el aviso en una goroutine con su propio
// contexto: el request de registro no espera ni falla por el correo.
func (uc *AuthUseCase) dispatchApprovalNotice(company *entity.Company) {
	if uc.notifier == nil {
		return
	}
	c := *company
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uc.notifier.CompanyRegistered(ctx, &c); err != nil {
			uc.log.Warn().Err(err).
				Str("company_id", c.ID).
				Msg("no se pudo enviar el aviso de aprobación")
		}
	}()
}

func validateRegisterCompany(in dto.RegisterCompanyRequest) error {
	switch {
	case strings.TrimSpace(in.Name) == "",
		strings.TrimSpace(in.Domain) == "",
		strings.TrimSpace(in.Email) == "",
		strings.TrimSpace(in.AdminUsername) == "":
		return domain.ErrInvalidInput
	case len(in.AdminPassword) < 8:
		return domain.ErrInvalidInput
	}
	return nil
}

// ToUserResponse convierte la entidad a DTO de salida (sin hash).
func ToUserResponse(u *entity.User) dto.UserResponse {
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

// ToCompanyResponse convierte la entidad a DTO de salida.
func ToCompanyResponse(c *entity.Company) dto.CompanyResponse {
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
