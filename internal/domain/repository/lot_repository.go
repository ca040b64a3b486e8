package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
)

// LotRepository puerto de persistencia para lotes de material.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Lot, error)
	// DecrementRemaining descuenta cantidad del lote; devuelve
	// domain.ErrInsufficientStock si no alcanza.
	DecrementRemaining(id string, quantity decimal.Decimal) error
}
