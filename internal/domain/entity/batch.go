package entity

import "github.com/shopspring/decimal"

// ProductBatch lote de producción de un producto para una orden.
// ProducedQuantity avanza conforme se registran items producidos.
type ProductBatch struct {
	ID               string
	WarehouseID      string
	ProductID        string
	OrderID          string
	OrderedQuantity  decimal.Decimal
	ProducedQuantity decimal.Decimal
}

// BatchConsumption consumo de un lote de material por un lote de producción.
// El par (product_batch, lot) es único; consumos sucesivos acumulan cantidad.
type BatchConsumption struct {
	ID             string
	ProductBatchID string
	LotID          string
	Quantity       decimal.Decimal
}
