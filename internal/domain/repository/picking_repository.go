package repository

import (
	"context"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
)

// PickingCandidateRepository define el puerto de persistencia de candidatos de picking.
type PickingCandidateRepository interface {
	// GetByHUIDs devuelve los candidatos de las HUs en orden de creación.
	GetByHUIDs(ctx context.Context, huIDs []string) ([]*entity.PickingCandidate, error)
	DeleteAll(ctx context.Context, ids []string) error
	CountByPickingSlot(ctx context.Context, slotID string) (int, error)
	// ToTableRecordReference referencia opaca del candidato para trazabilidad.
	ToTableRecordReference(candidate *entity.PickingCandidate) entity.TableRecordReference
}

// PickingSlotRepository define el puerto de persistencia de slots de picking.
type PickingSlotRepository interface {
	GetForUpdate(ctx context.Context, id string) (*entity.PickingSlot, error)
	Save(ctx context.Context, slot *entity.PickingSlot) error
	// CountQueuedHUs cantidad de HUs no destruidas en cola en el slot.
	CountQueuedHUs(ctx context.Context, slotID string) (int, error)
}
