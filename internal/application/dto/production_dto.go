package dto

import "time"

// CreateBatchRequest alta de un lote de producción para una orden.
type CreateBatchRequest struct {
	WarehouseID     string `json:"warehouse_id"`
	ProductID       string `json:"product_id"`
	OrderID         string `json:"order_id"`
	OrderedQuantity string `json:"ordered_quantity"` // decimal en texto
}

// BatchResponse salida de un lote de producción.
type BatchResponse struct {
	ID               string `json:"id"`
	WarehouseID      string `json:"warehouse_id"`
	ProductID        string `json:"product_id"`
	OrderID          string `json:"order_id"`
	OrderedQuantity  string `json:"ordered_quantity"`
	ProducedQuantity string `json:"produced_quantity"`
}

// ConsumeLotRequest consumo de material de un lote para el lote de producción.
type ConsumeLotRequest struct {
	WarehouseID string `json:"warehouse_id"`
	LotID       string `json:"lot_id"`
	Quantity    string `json:"quantity"`
}

// ConsumptionResponse consumo acumulado de un lote de material.
type ConsumptionResponse struct {
	ProductBatchID string `json:"product_batch_id"`
	LotID          string `json:"lot_id"`
	Quantity       string `json:"quantity"`
}

// RegisterItemRequest registro de una unidad producida serializada.
type RegisterItemRequest struct {
	SerialNumber string `json:"serial_number"`
}

// ItemResponse salida de un item serializado.
type ItemResponse struct {
	ID             string    `json:"id"`
	SerialNumber   string    `json:"serial_number"`
	ProductBatchID string    `json:"product_batch_id"`
	OperatorID     string    `json:"operator_id"`
	ProductionDate time.Time `json:"production_date"`
}
