package picking

import (
	"context"

	"github.com/jhoicas/Inventario-hu/internal/domain/allocation"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

// UnitOfWork repositorios atados a una misma transacción de BD.
// Savepoint ejecuta fn en una transacción anidada: si fn falla solo se revierte lo hecho dentro
// de fn y la transacción externa sigue utilizable.
type UnitOfWork interface {
	HandlingUnits() repository.HandlingUnitRepository
	SourceHUs() repository.SourceHURepository
	TrxLines() repository.HUTrxLineRepository
	PickingCandidates() repository.PickingCandidateRepository
	PickingSlots() repository.PickingSlotRepository
	Savepoint(ctx context.Context, fn func(uow UnitOfWork) error) error
}

// TxRunner ejecuta fn dentro de una transacción (Commit si fn devuelve nil, Rollback si no).
type TxRunner interface {
	Run(ctx context.Context, fn func(uow UnitOfWork) error) error
}

// ProductLookup resuelve productos con su UOM. Devuelve (nil, nil) si no existe.
type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

// LoadSpec origen/destino y tolerancias de una carga.
type LoadSpec struct {
	Source              []*entity.HandlingUnit
	Destinations        []*entity.HandlingUnit
	AllowPartialLoads   bool
	AllowPartialUnloads bool
	DestroyEmptyHUs     bool
}

// HULoader motor de carga: transfiere cantidad entre HUs y persiste el resultado en uow.
type HULoader interface {
	Load(ctx context.Context, uow UnitOfWork, spec LoadSpec, req allocation.Request) (allocation.Result, error)
}

// PickingSlotReleaser libera un slot de picking si ya no tiene dependientes. Idempotente.
type PickingSlotReleaser interface {
	ReleaseIfPossible(ctx context.Context, uow UnitOfWork, slotID string) (bool, error)
}
