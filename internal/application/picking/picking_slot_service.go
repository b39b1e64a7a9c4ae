package picking

import (
	"context"
	"time"
)

var _ PickingSlotReleaser = (*PickingSlotService)(nil)

// PickingSlotService operaciones sobre slots de picking.
type PickingSlotService struct{}

// NewPickingSlotService construye el servicio.
func NewPickingSlotService() *PickingSlotService {
	return &PickingSlotService{}
}

// ReleaseIfPossible libera el slot si no tiene HUs en cola ni candidatos de picking.
// Slot inexistente o ya libre: no hace nada. Devuelve true si el slot cambió.
func (s *PickingSlotService) ReleaseIfPossible(ctx context.Context, uow UnitOfWork, slotID string) (bool, error) {
	slot, err := uow.PickingSlots().GetForUpdate(ctx, slotID)
	if err != nil {
		return false, err
	}
	if slot == nil {
		return false, nil
	}
	queued, err := uow.PickingSlots().CountQueuedHUs(ctx, slotID)
	if err != nil {
		return false, err
	}
	if queued > 0 {
		return false, nil
	}
	candidates, err := uow.PickingCandidates().CountByPickingSlot(ctx, slotID)
	if err != nil {
		return false, err
	}
	if candidates > 0 {
		return false, nil
	}
	if !slot.Release(time.Now()) {
		return false, nil
	}
	if err := uow.PickingSlots().Save(ctx, slot); err != nil {
		return false, err
	}
	return true, nil
}
