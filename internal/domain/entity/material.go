package entity

import "time"

// Material materia prima de una empresa. Nombre único por empresa.
type Material struct {
	ID        string
	CompanyID string
	Name      string
	Unit      string // kg, l, unidad, etc.
	CreatedAt time.Time
}
