package dto

import "time"

// ReceiveLotRequest recepción de un lote de material de un proveedor.
// La cantidad entra como existencia de la bodega indicada.
type ReceiveLotRequest struct {
	SupplierID  string    `json:"supplier_id"`
	MaterialID  string    `json:"material_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    string    `json:"quantity"` // decimal en texto
	Expiration  time.Time `json:"expiration"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID                string    `json:"id"`
	SupplierID        string    `json:"supplier_id"`
	MaterialID        string    `json:"material_id"`
	QuantityReceived  string    `json:"quantity_received"`
	QuantityRemaining string    `json:"quantity_remaining"`
	ReceivedAt        time.Time `json:"received_at"`
	Expiration        time.Time `json:"expiration"`
}

// LotListResponse lista paginada de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// TransferRequest traslado de cantidad de un lote entre bodegas.
type TransferRequest struct {
	FromWarehouseID string `json:"from_warehouse_id"`
	ToWarehouseID   string `json:"to_warehouse_id"`
	LotID           string `json:"lot_id"`
	Quantity        string `json:"quantity"`
}

// InventoryLineResponse existencia de un lote en una bodega.
type InventoryLineResponse struct {
	WarehouseID string `json:"warehouse_id"`
	LotID       string `json:"lot_id"`
	Quantity    string `json:"quantity"`
}

// InventoryResponse existencias de una bodega.
type InventoryResponse struct {
	WarehouseID string                  `json:"warehouse_id"`
	Lines       []InventoryLineResponse `json:"lines"`
}

// CreateWarehouseRequest alta de bodega (nombre del conjunto cerrado).
type CreateWarehouseRequest struct {
	Name string `json:"name"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
