package reservation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
	"github.com/jhoicas/Inventario-hu/internal/application/reservation"
	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

type memHUs struct {
	hus map[string]*entity.HandlingUnit
}

func (m *memHUs) GetByID(_ context.Context, id string) (*entity.HandlingUnit, error) {
	return m.hus[id], nil
}

func (m *memHUs) GetForUpdate(ctx context.Context, id string) (*entity.HandlingUnit, error) {
	return m.GetByID(ctx, id)
}

func (m *memHUs) Save(_ context.Context, hu *entity.HandlingUnit) error {
	m.hus[hu.ID] = hu
	return nil
}

type memReservations struct {
	items []*entity.HUReservation
}

func (m *memReservations) Create(_ context.Context, r *entity.HUReservation) error {
	m.items = append(m.items, r)
	return nil
}

func (m *memReservations) ListByHU(_ context.Context, huID string) ([]*entity.HUReservation, error) {
	var out []*entity.HUReservation
	for _, r := range m.items {
		if r.HUID == huID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReservations) ReservedQty(_ context.Context, huID, productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, r := range m.items {
		if r.HUID == huID && r.ProductID == productID {
			total = total.Add(r.Qty)
		}
	}
	return total, nil
}

type fakeTx struct {
	hus  *memHUs
	res  *memReservations
	runs int
}

func (f *fakeTx) RunReservation(_ context.Context, fn func(repository.HandlingUnitRepository, repository.HUReservationRepository) error) error {
	f.runs++
	return fn(f.hus, f.res)
}

func setup(status entity.HUStatus, qty int64) (*reservation.HUReservationUseCase, *fakeTx) {
	tx := &fakeTx{
		hus: &memHUs{hus: map[string]*entity.HandlingUnit{
			"HU-1": {ID: "HU-1", Status: status, Storage: []entity.HUStorage{
				{ProductID: "P-1", UOMID: "EA", Qty: decimal.NewFromInt(qty)},
			}},
		}},
		res: &memReservations{},
	}
	return reservation.NewHUReservationUseCase(tx, tx.res, logger.Nop()), tx
}

func strPtr(s string) *string { return &s }

func TestReserve_PorLineaDePedido(t *testing.T) {
	uc, tx := setup(entity.HUStatusActive, 10)

	out, err := uc.Reserve(context.Background(), dto.CreateHUReservationRequest{
		HUID: "HU-1", ProductID: "P-1", Qty: decimal.NewFromInt(4), SalesOrderLineID: strPtr("OL-7"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.SalesOrderLineID)
	assert.Equal(t, "OL-7", *out.SalesOrderLineID)
	assert.Nil(t, out.ProjectLine)
	assert.Equal(t, "salesOrderLine:OL-7", out.DocRef)
	assert.NotEmpty(t, out.ID)
	assert.Len(t, tx.res.items, 1)
}

func TestReserve_PorLineaDeProyecto(t *testing.T) {
	uc, _ := setup(entity.HUStatusActive, 10)

	out, err := uc.Reserve(context.Background(), dto.CreateHUReservationRequest{
		HUID: "HU-1", ProductID: "P-1", Qty: decimal.NewFromInt(4),
		ProjectLine: &dto.ProjectLineRef{ProjectID: "PRJ-1", LineID: "L-2"},
	})
	require.NoError(t, err)

	require.NotNil(t, out.ProjectLine)
	assert.Equal(t, "PRJ-1", out.ProjectLine.ProjectID)
	assert.Equal(t, "L-2", out.ProjectLine.LineID)
	assert.Nil(t, out.SalesOrderLineID)
}

func TestReserve_DocumentoAmbiguoOAusente(t *testing.T) {
	uc, tx := setup(entity.HUStatusActive, 10)

	_, err := uc.Reserve(context.Background(), dto.CreateHUReservationRequest{
		HUID: "HU-1", ProductID: "P-1", Qty: decimal.NewFromInt(1),
		SalesOrderLineID: strPtr("OL-7"),
		ProjectLine:      &dto.ProjectLineRef{ProjectID: "PRJ-1", LineID: "L-2"},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidDocRef))

	_, err = uc.Reserve(context.Background(), dto.CreateHUReservationRequest{
		HUID: "HU-1", ProductID: "P-1", Qty: decimal.NewFromInt(1),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidDocRef))
	assert.Zero(t, tx.runs)
}

func TestReserve_NoSuperaLoDisponible(t *testing.T) {
	uc, tx := setup(entity.HUStatusActive, 10)
	ctx := context.Background()

	_, err := uc.Reserve(ctx, dto.CreateHUReservationRequest{
		HUID: "HU-1", ProductID: "P-1", Qty: decimal.NewFromInt(7), SalesOrderLineID: strPtr("OL-1"),
	})
	require.NoError(t, err)

	_, err = uc.Reserve(ctx, dto.CreateHUReservationRequest{
		HUID: "HU-1", ProductID: "P-1", Qty: decimal.NewFromInt(4), SalesOrderLineID: strPtr("OL-2"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.True(t, domain.IsPrecondition(err))

	var pe *domain.PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "3", pe.Params["available"])
	assert.Len(t, tx.res.items, 1)
}

func TestReserve_HUNoActivaOInexistente(t *testing.T) {
	uc, _ := setup(entity.HUStatusShipped, 10)
	_, err := uc.Reserve(context.Background(), dto.CreateHUReservationRequest{
		HUID: "HU-1", ProductID: "P-1", Qty: decimal.NewFromInt(1), SalesOrderLineID: strPtr("OL-1"),
	})
	assert.True(t, errors.Is(err, domain.ErrHUNotActive))

	_, err = uc.Reserve(context.Background(), dto.CreateHUReservationRequest{
		HUID: "HU-404", ProductID: "P-1", Qty: decimal.NewFromInt(1), SalesOrderLineID: strPtr("OL-1"),
	})
	assert.True(t, errors.Is(err, domain.ErrHUNotFound))
}

func TestReserve_CantidadInvalida(t *testing.T) {
	uc, _ := setup(entity.HUStatusActive, 10)
	_, err := uc.Reserve(context.Background(), dto.CreateHUReservationRequest{
		HUID: "HU-1", ProductID: "P-1", Qty: decimal.Zero, SalesOrderLineID: strPtr("OL-1"),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestListByHU(t *testing.T) {
	uc, _ := setup(entity.HUStatusActive, 10)
	ctx := context.Background()
	for _, line := range []string{"OL-1", "OL-2"} {
		_, err := uc.Reserve(ctx, dto.CreateHUReservationRequest{
			HUID: "HU-1", ProductID: "P-1", Qty: decimal.NewFromInt(2), SalesOrderLineID: strPtr(line),
		})
		require.NoError(t, err)
	}

	out, err := uc.ListByHU(ctx, "HU-1")
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "OL-1", *out.Items[0].SalesOrderLineID)

	empty, err := uc.ListByHU(ctx, "HU-2")
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
}
