package entity

import "time"

// Estados válidos de una orden.
const (
	OrderDraft     = "Draft"
	OrderConfirmed = "Confirmed"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

// orderTransitions tabla de transiciones permitidas del ciclo de vida.
var orderTransitions = map[string][]string{
	OrderDraft:     {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
}

// CanTransition informa si la orden puede pasar de from a to.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order orden de un cliente. Nace en Draft y avanza por la tabla de
// transiciones; Shipped y Delivered registran sus fechas.
type Order struct {
	ID            string
	CompanyID     string
	ClientID      string
	Status        string // ver constantes Order*
	OrderDate     time.Time
	ShippedDate   *time.Time
	DeliveredDate *time.Time
}
