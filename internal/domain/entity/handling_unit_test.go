package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
)

func newHU(qty int64) *entity.HandlingUnit {
	return &entity.HandlingUnit{
		ID:     "HU-1",
		Status: entity.HUStatusActive,
		Storage: []entity.HUStorage{
			{ProductID: "P-1", UOMID: "EA", Qty: decimal.NewFromInt(qty)},
		},
	}
}

func TestHandlingUnit_SubtractQty(t *testing.T) {
	hu := newHU(10)

	require.NoError(t, hu.SubtractQty("P-1", decimal.NewFromInt(4)))
	assert.True(t, hu.QtyOf("P-1").Equal(decimal.NewFromInt(6)))

	err := hu.SubtractQty("P-1", decimal.NewFromInt(7))
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	err = hu.SubtractQty("P-2", decimal.NewFromInt(1))
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestHandlingUnit_MarkDestroyed_ConCantidad_Falla(t *testing.T) {
	hu := newHU(1)

	err := hu.MarkDestroyed(time.Now())
	assert.True(t, errors.Is(err, domain.ErrHUNotEmpty))
	assert.True(t, hu.IsActive())
}

func TestHandlingUnit_MarkDestroyed_Vacia(t *testing.T) {
	hu := newHU(2)
	require.NoError(t, hu.SubtractQty("P-1", decimal.NewFromInt(2)))

	require.NoError(t, hu.MarkDestroyed(time.Now()))
	assert.True(t, hu.IsDestroyed())
	assert.True(t, hu.TotalQty().IsZero())

	err := hu.AddQty("P-1", "EA", decimal.NewFromInt(1))
	assert.True(t, errors.Is(err, domain.ErrHUNotActive), "una HU destruida no acepta cantidad")
}

func TestHandlingUnit_FreeCapacity(t *testing.T) {
	hu := newHU(3)
	assert.Nil(t, hu.FreeCapacity(), "sin capacidad configurada no hay límite")

	capacity := decimal.NewFromInt(5)
	hu.Capacity = &capacity
	require.NotNil(t, hu.FreeCapacity())
	assert.True(t, hu.FreeCapacity().Equal(decimal.NewFromInt(2)))
}

func TestHUStatusOfCode(t *testing.T) {
	st, err := entity.HUStatusOfCode("D")
	require.NoError(t, err)
	assert.Equal(t, entity.HUStatusDestroyed, st)

	_, err = entity.HUStatusOfCode("Z")
	assert.Error(t, err)
}

func TestExtractPickingSlotIDs_DistintosEnOrden(t *testing.T) {
	candidates := []*entity.PickingCandidate{
		{ID: "C1", PickingSlotID: "S2"},
		{ID: "C2", PickingSlotID: ""},
		{ID: "C3", PickingSlotID: "S1"},
		{ID: "C4", PickingSlotID: "S2"},
	}

	assert.Equal(t, []string{"S2", "S1"}, entity.ExtractPickingSlotIDs(candidates))
	assert.Equal(t, []string{"C1", "C2", "C3", "C4"}, entity.PickingCandidateIDs(candidates))
}

func TestPickingSlot_Release_Idempotente(t *testing.T) {
	partner := "BP-1"
	slot := &entity.PickingSlot{ID: "S1", Status: entity.PickingSlotAllocated, PartnerID: &partner}

	assert.True(t, slot.Release(time.Now()))
	assert.Equal(t, entity.PickingSlotFree, slot.Status)
	assert.Nil(t, slot.PartnerID)
	assert.False(t, slot.Release(time.Now()), "segunda liberación no cambia nada")
}
