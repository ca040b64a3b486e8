package dto

import "time"

// CreateOrderRequest alta de una orden para un cliente (nace en Draft).
type CreateOrderRequest struct {
	ClientID string `json:"client_id"`
}

// UpdateOrderStatusRequest transición de estado de la orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	ClientID      string     `json:"client_id"`
	Status        string     `json:"status"`
	OrderDate     time.Time  `json:"order_date"`
	ShippedDate   *time.Time `json:"shipped_date,omitempty"`
	DeliveredDate *time.Time `json:"delivered_date,omitempty"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
