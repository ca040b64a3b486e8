package auth

import (
	"context"

	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

// RegistrationTxRunner ejecuta el alta de empresa + usuario admin dentro de
// una transacción: o se crean ambos o ninguno.
type RegistrationTxRunner interface {
	Run(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		users repository.UserRepository,
	) error) error
}

// ApprovalNotifier avisa al operador que hay una empresa pendiente de
// aprobación. Se invoca fire-and-forget: su fallo nunca afecta el registro.
type ApprovalNotifier interface {
	CompanyRegistered(ctx context.Context, company *entity.Company) error
}
