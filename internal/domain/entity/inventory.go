package entity

import "github.com/shopspring/decimal"

// Inventory existencia de un lote dentro de una bodega.
// El par (warehouse, lot) es único.
type Inventory struct {
	ID          string
	WarehouseID string
	LotID       string
	Quantity    decimal.Decimal
}
