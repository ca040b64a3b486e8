package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot lote de material recibido de un proveedor. QuantityRemaining decrece
// al consumirse en producción y nunca puede quedar negativa.
type Lot struct {
	ID                string
	SupplierID        string
	MaterialID        string
	QuantityReceived  decimal.Decimal
	QuantityRemaining decimal.Decimal
	ReceivedAt        time.Time
	Expiration        time.Time
}
