package picking

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-hu/internal/domain/allocation"
)

var _ HULoader = (*HULoaderService)(nil)

// HULoaderService ejecuta allocation.Loader en memoria y persiste HUs modificadas y líneas de transacción.
type HULoaderService struct {
	newID func() string
}

// NewHULoaderService construye el servicio. newID puede ser nil (UUID).
func NewHULoaderService(newID func() string) *HULoaderService {
	return &HULoaderService{newID: newID}
}

// Load transfiere req.Qty desde spec.Source hacia spec.Destinations dentro de la transacción de uow.
func (s *HULoaderService) Load(ctx context.Context, uow UnitOfWork, spec LoadSpec, req allocation.Request) (allocation.Result, error) {
	loader := &allocation.Loader{
		Source:              spec.Source,
		Destinations:        spec.Destinations,
		AllowPartialLoads:   spec.AllowPartialLoads,
		AllowPartialUnloads: spec.AllowPartialUnloads,
		DestroyEmptyHUs:     spec.DestroyEmptyHUs,
		NewID:               s.newID,
	}
	res, err := loader.Load(req, time.Now())
	if err != nil {
		return allocation.Result{}, err
	}
	for _, hu := range res.Touched {
		if err := uow.HandlingUnits().Save(ctx, hu); err != nil {
			return allocation.Result{}, fmt.Errorf("save HU %s: %w", hu.ID, err)
		}
	}
	if len(res.TrxLines) > 0 {
		if err := uow.TrxLines().CreateAll(ctx, res.TrxLines); err != nil {
			return allocation.Result{}, err
		}
	}
	return res, nil
}
