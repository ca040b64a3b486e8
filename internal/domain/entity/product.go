package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto terminado de una empresa. Nombre único por empresa.
type Product struct {
	ID        string
	CompanyID string
	Name      string
	Unit      string
	CreatedAt time.Time
}

// BOMLine línea de la lista de materiales (BOM) de un producto:
// cuánta cantidad de un material se necesita por unidad producida.
// El par (product, material) es único.
type BOMLine struct {
	ID         string
	ProductID  string
	MaterialID string
	Quantity   decimal.Decimal
}
