package entity

import "time"

// Item unidad producida serializada, registrada por el operador que la produjo.
type Item struct {
	ID             string
	SerialNumber   string // único
	ProductBatchID string
	OperatorID     string
	ProductionDate time.Time
}
