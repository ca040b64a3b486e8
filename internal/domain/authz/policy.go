// Package authz contiene el motor de autorización por roles: una tabla
// declarativa de permisos por operación, evaluada con precedencia fija,
// en lugar de condicionales dispersos en los handlers.
package authz

import (
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
)

// Operation operación sujeta a autorización.
type Operation string

const (
	OpCreateCompany  Operation = "create-company"
	OpApproveCompany Operation = "approve-company"
	OpCreateUser     Operation = "create-user"
	OpDeleteUser     Operation = "delete-user"
	OpUpdatePassword Operation = "update-password"
	OpListUsers      Operation = "list-users"
	OpListCompanies  Operation = "list-companies"
)

// Actor quien ejecuta la operación. Un Actor vacío (Anonymous) representa
// una petición sin credencial.
type Actor struct {
	UserID      string
	CompanyID   string
	Role        string
	IsSuperuser bool
	Anonymous   bool
}

// Target sobre quién/qué se ejecuta la operación. Para operaciones de
// creación solo importa CompanyID; para delete/update también UserID.
type Target struct {
	UserID    string
	CompanyID string
}

// rule requisitos para un actor no superusuario.
type rule struct {
	anonymous     bool     // permitida sin credencial
	superuserOnly bool     // solo superusuario
	roles         []string // roles permitidos
	sameCompany   bool     // el target debe pertenecer a la empresa del actor
	selfAllowed   bool     // el usuario target puede ejecutarla sobre sí mismo
}

// policy tabla declarativa (operación → regla). El superusuario siempre
// está permitido y no consulta la tabla.
var policy = map[Operation]rule{
	OpCreateCompany:  {anonymous: true},
	OpApproveCompany: {superuserOnly: true},
	OpCreateUser:     {roles: []string{entity.RoleAdmin}, sameCompany: true},
	OpDeleteUser:     {roles: []string{entity.RoleAdmin}, sameCompany: true},
	OpUpdatePassword: {roles: []string{entity.RoleAdmin}, sameCompany: true, selfAllowed: true},
	OpListUsers:      {roles: []string{entity.RoleAdmin}, sameCompany: true},
	OpListCompanies:  {superuserOnly: true},
}

// Decide evalúa la tabla con precedencia fija:
//  1. Superusuario → permitido, cualquier empresa y cualquier usuario target.
//  2. Operación anónima → permitida para cualquiera.
//  3. Sin credencial → ErrUnauthorized.
//  4. Regla selfAllowed y target == actor → permitido sin importar rol.
//  5. Rol requerido y scoping por empresa → ErrForbidden si no se cumplen.
//
// Devuelve nil si la operación está permitida.
func Decide(actor Actor, op Operation, target Target) error {
	r, ok := policy[op]
	if !ok {
		return domain.ErrForbidden
	}
	if r.anonymous {
		return nil
	}
	if actor.Anonymous {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperuser {
		return nil
	}
	if r.superuserOnly {
		return domain.ErrForbidden
	}
	if r.selfAllowed && target.UserID != "" && target.UserID == actor.UserID {
		return nil
	}
	if !roleAllowed(r.roles, actor.Role) {
		return domain.ErrForbidden
	}
	if r.sameCompany && target.CompanyID != "" && target.CompanyID != actor.CompanyID {
		return domain.ErrForbidden
	}
	return nil
}

// ScopeCompanyID resuelve la empresa efectiva de una operación de escritura:
// el superusuario puede elegir empresa; cualquier otro actor queda forzado a
// la suya, ignorando lo que venga en la petición.
func ScopeCompanyID(actor Actor, requested string) string {
	if actor.IsSuperuser && requested != "" {
		return requested
	}
	return actor.CompanyID
}

func roleAllowed(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
