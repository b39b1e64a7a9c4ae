package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

var _ repository.PickingCandidateRepository = (*PickingCandidateRepo)(nil)

// PickingCandidateRepo candidatos de picking sobre PostgreSQL.
type PickingCandidateRepo struct {
	q Querier
}

// NewPickingCandidateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPickingCandidateRepository(q Querier) *PickingCandidateRepo {
	return &PickingCandidateRepo{q: q}
}

// GetByHUIDs candidatos de las HUs en orden de creación (created_at, id).
func (r *PickingCandidateRepo) GetByHUIDs(ctx context.Context, huIDs []string) ([]*entity.PickingCandidate, error) {
	if len(huIDs) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, hu_id, picking_slot_id, shipment_schedule_id, qty_picked, status, created_at, updated_at
		FROM picking_candidates WHERE hu_id = ANY($1)
		ORDER BY created_at, id`, huIDs)
	if err != nil {
		return nil, fmt.Errorf("get picking candidates: %w", err)
	}
	defer rows.Close()

	var out []*entity.PickingCandidate
	for rows.Next() {
		var (
			c      entity.PickingCandidate
			slotID *string
			status string
		)
		if err := rows.Scan(&c.ID, &c.HUID, &slotID, &c.ShipmentScheduleID, &c.QtyPicked, &status,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan picking candidate: %w", err)
		}
		if slotID != nil {
			c.PickingSlotID = *slotID
		}
		if c.Status, err = entity.PickingCandidateStatusOfCode(status); err != nil {
			return nil, fmt.Errorf("picking candidate %s: %w", c.ID, err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// DeleteAll borra los candidatos indicados.
func (r *PickingCandidateRepo) DeleteAll(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM picking_candidates WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("delete picking candidates: %w", err)
	}
	return nil
}

// CountByPickingSlot candidatos que aún apuntan al slot.
func (r *PickingCandidateRepo) CountByPickingSlot(ctx context.Context, slotID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM picking_candidates WHERE picking_slot_id = $1`, slotID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count picking candidates: %w", err)
	}
	return n, nil
}

// ToTableRecordReference referencia del candidato usada en las líneas de transacción.
func (r *PickingCandidateRepo) ToTableRecordReference(c *entity.PickingCandidate) entity.TableRecordReference {
	return entity.TableRecordReference{TableName: entity.TablePickingCandidates, RecordID: c.ID}
}
