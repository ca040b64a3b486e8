package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleEmpacador = "empacador"
	RoleProveedor = "proveedor"
	RoleOperario  = "operario"
)

// Roles lista cerrada de roles, en el orden de las constantes.
var Roles = []string{RoleAdmin, RoleBodeguero, RoleEmpacador, RoleProveedor, RoleOperario}

// ValidRole informa si el rol pertenece a la enumeración cerrada.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema (pertenece a exactamente una Company).
// IsSuperuser es ortogonal a la empresa: un superusuario ignora el scoping por
// empresa y la verificación de vigencia en el login.
type User struct {
	ID           string
	CompanyID    string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ver constantes Role*
	IsSuperuser  bool
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
