package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
)

// HUReservationRepository define el puerto de persistencia de reservas de HU.
type HUReservationRepository interface {
	Create(ctx context.Context, r *entity.HUReservation) error
	ListByHU(ctx context.Context, huID string) ([]*entity.HUReservation, error)
	// ReservedQty cantidad ya reservada del producto en la HU.
	ReservedQty(ctx context.Context, huID, productID string) (decimal.Decimal, error)
}
