package picking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-hu/internal/application/picking"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
)

func TestPickingSlotService_ReleaseIfPossible(t *testing.T) {
	partner := "BP-1"
	tests := []struct {
		name        string
		slot        *entity.PickingSlot
		queued      int
		candidate   bool
		wantRelease bool
		wantStatus  entity.PickingSlotStatus
	}{
		{
			name:        "slot asignado sin cola ni candidatos se libera",
			slot:        &entity.PickingSlot{ID: "SLOT-1", Status: entity.PickingSlotAllocated, PartnerID: &partner},
			wantRelease: true,
			wantStatus:  entity.PickingSlotFree,
		},
		{
			name:       "con HUs en cola no se libera",
			slot:       &entity.PickingSlot{ID: "SLOT-1", Status: entity.PickingSlotAllocated, PartnerID: &partner},
			queued:     2,
			wantStatus: entity.PickingSlotAllocated,
		},
		{
			name:       "con candidatos pendientes no se libera",
			slot:       &entity.PickingSlot{ID: "SLOT-1", Status: entity.PickingSlotAllocated, PartnerID: &partner},
			candidate:  true,
			wantStatus: entity.PickingSlotAllocated,
		},
		{
			name:       "slot ya libre no cambia",
			slot:       &entity.PickingSlot{ID: "SLOT-1", Status: entity.PickingSlotFree},
			wantStatus: entity.PickingSlotFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.slots[tt.slot.ID] = tt.slot
			store.queued[tt.slot.ID] = tt.queued
			if tt.candidate {
				store.candidates = append(store.candidates, &entity.PickingCandidate{ID: "PC-1", PickingSlotID: tt.slot.ID})
			}

			released, err := picking.NewPickingSlotService().ReleaseIfPossible(context.Background(), store, tt.slot.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRelease, released)
			assert.Equal(t, tt.wantStatus, store.slots[tt.slot.ID].Status)
		})
	}
}

func TestPickingSlotService_SlotInexistente(t *testing.T) {
	released, err := picking.NewPickingSlotService().ReleaseIfPossible(context.Background(), newMemStore(), "SLOT-404")
	require.NoError(t, err)
	assert.False(t, released)
}
