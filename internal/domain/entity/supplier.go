package entity

import "time"

// Supplier proveedor de materiales de una empresa.
// El par (name, email) es único dentro de la empresa.
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Phone     string
	Email     string
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
