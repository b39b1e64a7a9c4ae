package picking_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/application/picking"
	"github.com/jhoicas/Inventario-hu/internal/domain/allocation"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria que implementa UnitOfWork / TxRunner
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	hus        map[string]*entity.HandlingUnit
	sources    map[string][]string // hu -> HUs origen
	candidates []*entity.PickingCandidate
	slots      map[string]*entity.PickingSlot
	queued     map[string]int
	trxLines   []*entity.HUTrxLine

	huSaves    int
	deleted    []string
	savepoints int
	txRuns     int

	errGetCandidates error
}

func newMemStore() *memStore {
	return &memStore{
		hus:     make(map[string]*entity.HandlingUnit),
		sources: make(map[string][]string),
		slots:   make(map[string]*entity.PickingSlot),
		queued:  make(map[string]int),
	}
}

func cloneHU(h *entity.HandlingUnit) *entity.HandlingUnit {
	c := *h
	c.Storage = append([]entity.HUStorage(nil), h.Storage...)
	return &c
}

func (s *memStore) Run(_ context.Context, fn func(uow picking.UnitOfWork) error) error {
	s.txRuns++
	return fn(s)
}

func (s *memStore) Savepoint(_ context.Context, fn func(uow picking.UnitOfWork) error) error {
	s.savepoints++
	return fn(s)
}

func (s *memStore) HandlingUnits() repository.HandlingUnitRepository         { return memHURepo{s} }
func (s *memStore) SourceHUs() repository.SourceHURepository                 { return memSourceRepo{s} }
func (s *memStore) TrxLines() repository.HUTrxLineRepository                 { return memTrxRepo{s} }
func (s *memStore) PickingCandidates() repository.PickingCandidateRepository { return memCandidateRepo{s} }
func (s *memStore) PickingSlots() repository.PickingSlotRepository           { return memSlotRepo{s} }

type memHURepo struct{ s *memStore }

func (r memHURepo) GetByID(_ context.Context, id string) (*entity.HandlingUnit, error) {
	h, ok := r.s.hus[id]
	if !ok {
		return nil, nil
	}
	return cloneHU(h), nil
}

func (r memHURepo) GetForUpdate(ctx context.Context, id string) (*entity.HandlingUnit, error) {
	return r.GetByID(ctx, id)
}

func (r memHURepo) Save(_ context.Context, hu *entity.HandlingUnit) error {
	r.s.huSaves++
	r.s.hus[hu.ID] = cloneHU(hu)
	return nil
}

type memSourceRepo struct{ s *memStore }

func (r memSourceRepo) RetrieveActualSourceHUs(_ context.Context, huIDs []string) ([]*entity.HandlingUnit, error) {
	var out []*entity.HandlingUnit
	for _, id := range huIDs {
		for _, srcID := range r.s.sources[id] {
			if h, ok := r.s.hus[srcID]; ok && h.IsActive() {
				out = append(out, cloneHU(h))
			}
		}
	}
	return out, nil
}

type memTrxRepo struct{ s *memStore }

func (r memTrxRepo) CreateAll(_ context.Context, lines []*entity.HUTrxLine) error {
	r.s.trxLines = append(r.s.trxLines, lines...)
	return nil
}

func (r memTrxRepo) ListByHU(_ context.Context, huID string) ([]*entity.HUTrxLine, error) {
	var out []*entity.HUTrxLine
	for _, l := range r.s.trxLines {
		if l.HUID == huID {
			out = append(out, l)
		}
	}
	return out, nil
}

type memCandidateRepo struct{ s *memStore }

func (r memCandidateRepo) GetByHUIDs(_ context.Context, huIDs []string) ([]*entity.PickingCandidate, error) {
	if r.s.errGetCandidates != nil {
		return nil, r.s.errGetCandidates
	}
	wanted := make(map[string]bool, len(huIDs))
	for _, id := range huIDs {
		wanted[id] = true
	}
	var out []*entity.PickingCandidate
	for _, c := range r.s.candidates {
		if wanted[c.HUID] {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memCandidateRepo) DeleteAll(_ context.Context, ids []string) error {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.s.candidates[:0]
	for _, c := range r.s.candidates {
		if drop[c.ID] {
			r.s.deleted = append(r.s.deleted, c.ID)
			continue
		}
		kept = append(kept, c)
	}
	r.s.candidates = kept
	return nil
}

func (r memCandidateRepo) CountByPickingSlot(_ context.Context, slotID string) (int, error) {
	n := 0
	for _, c := range r.s.candidates {
		if c.PickingSlotID == slotID {
			n++
		}
	}
	return n, nil
}

func (r memCandidateRepo) ToTableRecordReference(c *entity.PickingCandidate) entity.TableRecordReference {
	return entity.TableRecordReference{TableName: entity.TablePickingCandidates, RecordID: c.ID}
}

type memSlotRepo struct{ s *memStore }

func (r memSlotRepo) GetForUpdate(_ context.Context, id string) (*entity.PickingSlot, error) {
	slot, ok := r.s.slots[id]
	if !ok {
		return nil, nil
	}
	c := *slot
	return &c, nil
}

func (r memSlotRepo) Save(_ context.Context, slot *entity.PickingSlot) error {
	c := *slot
	r.s.slots[slot.ID] = &c
	return nil
}

func (r memSlotRepo) CountQueuedHUs(_ context.Context, slotID string) (int, error) {
	return r.s.queued[slotID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Colaboradores guionados
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts struct {
	products map[string]*entity.Product
	err      error
}

func (f fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

// scriptedLoader devuelve en cada llamada la cantidad del guion, acotada a lo pedido como haría
// un loader real; al agotar el guion con destroyHU marca la HU origen como destruida en el store.
type scriptedLoader struct {
	store     *memStore
	allocs    []int64
	destroyHU bool
	requests  []allocation.Request
}

func (l *scriptedLoader) Load(_ context.Context, _ picking.UnitOfWork, spec picking.LoadSpec, req allocation.Request) (allocation.Result, error) {
	i := len(l.requests)
	l.requests = append(l.requests, req)
	qty := decimal.Zero
	if i < len(l.allocs) {
		qty = decimal.Min(decimal.NewFromInt(l.allocs[i]), req.Qty)
	}
	if l.destroyHU && i == len(l.allocs)-1 {
		for _, hu := range spec.Source {
			stored := l.store.hus[hu.ID]
			stored.Storage = nil
			stored.Status = entity.HUStatusDestroyed
		}
	}
	return allocation.Result{QtyToAllocate: req.Qty, QtyAllocated: qty}, nil
}

type fakeReleaser struct {
	calls  []string
	failOn map[string]error
}

func (f *fakeReleaser) ReleaseIfPossible(_ context.Context, _ picking.UnitOfWork, slotID string) (bool, error) {
	f.calls = append(f.calls, slotID)
	if err := f.failOn[slotID]; err != nil {
		return false, err
	}
	return true, nil
}
