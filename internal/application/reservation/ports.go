package reservation

import (
	"context"

	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// La HU se bloquea (FOR UPDATE) para que dos reservas concurrentes no excedan su cantidad.
type TxRunner interface {
	RunReservation(ctx context.Context, fn func(
		huRepo repository.HandlingUnitRepository,
		reservationRepo repository.HUReservationRepository,
	) error) error
}
