package stepdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/testutil/stepdata"
)

func newHUTable() *stepdata.Table[string, *entity.HandlingUnit] {
	return stepdata.New("handling_units", func(h *entity.HandlingUnit) string { return h.ID })
}

func TestTable_PutGet(t *testing.T) {
	table := newHUTable()
	require.NoError(t, table.Put("hu_1", &entity.HandlingUnit{ID: "HU-100"}))

	id, err := table.GetID("hu_1")
	require.NoError(t, err)
	assert.Equal(t, "HU-100", id)
	assert.Equal(t, "HU-100", table.MustGetID(t, "hu_1"))

	_, ok := table.GetOptional("hu_2")
	assert.False(t, ok)
	_, err = table.Get("hu_2")
	assert.Error(t, err)
}

func TestTable_PutDuplicado_Falla(t *testing.T) {
	table := newHUTable()
	require.NoError(t, table.Put("hu_1", &entity.HandlingUnit{ID: "HU-100"}))
	assert.Error(t, table.Put("hu_1", &entity.HandlingUnit{ID: "HU-200"}))
}

func TestTable_PutOrReplace_MantieneOrden(t *testing.T) {
	table := newHUTable()
	table.PutOrReplace("hu_1", &entity.HandlingUnit{ID: "HU-100"})
	table.PutOrReplace("hu_2", &entity.HandlingUnit{ID: "HU-200"})
	table.PutOrReplace("hu_1", &entity.HandlingUnit{ID: "HU-101"})

	assert.Equal(t, []string{"hu_1", "hu_2"}, table.Identifiers())
	assert.Equal(t, "HU-101", table.Records()[0].ID)
}
