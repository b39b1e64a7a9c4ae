package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

var _ repository.PickingSlotRepository = (*PickingSlotRepo)(nil)

// PickingSlotRepo slots de picking sobre PostgreSQL; la cola de HUs vive en picking_slot_hus.
type PickingSlotRepo struct {
	q Querier
}

// NewPickingSlotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPickingSlotRepository(q Querier) *PickingSlotRepo {
	return &PickingSlotRepo{q: q}
}

// GetForUpdate obtiene el slot y bloquea la fila. (nil, nil) si no existe.
func (r *PickingSlotRepo) GetForUpdate(ctx context.Context, id string) (*entity.PickingSlot, error) {
	var (
		s      entity.PickingSlot
		status string
	)
	err := r.q.QueryRow(ctx, `
		SELECT id, code, warehouse_id, status, partner_id, updated_at
		FROM picking_slots WHERE id = $1
		FOR UPDATE`, id).Scan(&s.ID, &s.Code, &s.WarehouseID, &status, &s.PartnerID, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get picking slot for update: %w", err)
	}
	if s.Status, err = entity.PickingSlotStatusOfCode(status); err != nil {
		return nil, fmt.Errorf("picking slot %s: %w", s.ID, err)
	}
	return &s, nil
}

// Save actualiza estado y cliente del slot.
func (r *PickingSlotRepo) Save(ctx context.Context, slot *entity.PickingSlot) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE picking_slots SET status = $2, partner_id = $3, updated_at = $4
		WHERE id = $1`,
		slot.ID, slot.Status.Code(), slot.PartnerID, slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update picking slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update picking slot %s: %w", slot.ID, domain.ErrNotFound)
	}
	return nil
}

// CountQueuedHUs HUs en cola en el slot. Las HUs destruidas no cuentan: su fila de cola queda
// como histórico y no debe bloquear la liberación.
func (r *PickingSlotRepo) CountQueuedHUs(ctx context.Context, slotID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT count(*)
		FROM picking_slot_hus psh
		JOIN handling_units hu ON hu.id = psh.hu_id
		WHERE psh.picking_slot_id = $1 AND hu.status <> $2`,
		slotID, entity.HUStatusDestroyed.Code(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count queued HUs: %w", err)
	}
	return n, nil
}
