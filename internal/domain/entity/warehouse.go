package entity

import "time"

// Nombres válidos de bodega; únicos por empresa.
const (
	WarehouseMain       = "Main"
	WarehouseProduction = "Production"
	WarehouseFinished   = "Finished"
	WarehouseShipped    = "Shipped"
)

// WarehouseNames lista cerrada de nombres de bodega.
var WarehouseNames = []string{WarehouseMain, WarehouseProduction, WarehouseFinished, WarehouseShipped}

// ValidWarehouseName informa si el nombre pertenece al conjunto cerrado.
func ValidWarehouseName(name string) bool {
	for _, n := range WarehouseNames {
		if n == name {
			return true
		}
	}
	return false
}

// Warehouse bodega física de una empresa.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string // ver constantes Warehouse*
	CreatedAt time.Time
}
