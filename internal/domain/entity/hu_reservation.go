package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/domain/reservation"
)

// HUReservation cantidad de un producto de una HU reservada para un documento (pedido o proyecto).
type HUReservation struct {
	ID        string
	HUID      string
	ProductID string
	Qty       decimal.Decimal
	DocRef    reservation.DocRef
	CreatedAt time.Time
}
