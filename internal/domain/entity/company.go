package entity

import "time"

// Company representa una organización/tenant del sistema. Se crea inactiva
// mediante el registro público y solo un superusuario puede aprobarla.
type Company struct {
	ID             string
	Name           string
	Domain         string
	Email          string
	IsActive       bool // false hasta la aprobación del superusuario
	CreatedAt      time.Time
	ExpirationDate time.Time
}

// EligibleForLogin informa si los usuarios de la empresa pueden autenticarse:
// empresa activa y dentro de la ventana de vigencia. Los superusuarios no
// pasan por esta verificación.
func (c Company) EligibleForLogin(now time.Time) bool {
	return c.IsActive && !now.After(c.ExpirationDate)
}
