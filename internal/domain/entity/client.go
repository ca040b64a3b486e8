package entity

import "time"

// Client cliente final de una empresa (destinatario de órdenes).
// El par (name, email) es único dentro de la empresa.
type Client struct {
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
