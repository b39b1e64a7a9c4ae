package allocation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
)

// Loader descarga cantidad de las HUs origen y la carga en las HUs destino (en memoria).
// AllowPartialUnloads: no falla si el origen tiene menos de lo pedido.
// AllowPartialLoads: no falla si los destinos no tienen capacidad para todo.
// DestroyEmptyHUs: las HUs origen que quedan vacías pasan a Destroyed.
type Loader struct {
	Source              []*entity.HandlingUnit
	Destinations        []*entity.HandlingUnit
	AllowPartialLoads   bool
	AllowPartialUnloads bool
	DestroyEmptyHUs     bool

	// NewID genera ids de transacción y de línea; por defecto UUID.
	NewID func() string
}

// Load ejecuta la carga. No persiste nada: el caller guarda Result.Touched y Result.TrxLines.
func (l *Loader) Load(req Request, now time.Time) (Result, error) {
	if len(l.Destinations) == 0 {
		return Result{}, ErrNoDestination
	}
	newID := l.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	res := Result{QtyToAllocate: req.Qty, QtyAllocated: decimal.Zero}

	qtyToMove := req.Qty
	available := l.availableInSource(req.ProductID)
	if available.LessThan(qtyToMove) {
		if !l.AllowPartialUnloads {
			return Result{}, fmt.Errorf("available %s < requested %s: %w", available, qtyToMove, ErrPartialUnloadNotAllowed)
		}
		qtyToMove = available
	}
	if !req.ForceQtyAllocation {
		if capacity := l.freeCapacity(); capacity != nil && capacity.LessThan(qtyToMove) {
			if !l.AllowPartialLoads {
				return Result{}, fmt.Errorf("capacity %s < requested %s: %w", *capacity, qtyToMove, ErrPartialLoadNotAllowed)
			}
			qtyToMove = *capacity
		}
	}
	if !qtyToMove.GreaterThan(decimal.Zero) {
		return res, nil
	}

	touched := make(map[string]bool)
	touch := func(hu *entity.HandlingUnit) {
		if !touched[hu.ID] {
			touched[hu.ID] = true
			res.Touched = append(res.Touched, hu)
		}
	}

	trxID := newID()
	remaining := qtyToMove
	for _, src := range l.Source {
		if remaining.IsZero() {
			break
		}
		if src.IsDestroyed() {
			continue
		}
		fromSrc := decimal.Min(src.QtyOf(req.ProductID), remaining)
		for _, dst := range l.Destinations {
			if !fromSrc.GreaterThan(decimal.Zero) {
				break
			}
			if dst.ID == src.ID || dst.IsDestroyed() {
				continue
			}
			chunk := fromSrc
			if !req.ForceQtyAllocation {
				if free := dst.FreeCapacity(); free != nil {
					chunk = decimal.Min(chunk, *free)
				}
			}
			if !chunk.GreaterThan(decimal.Zero) {
				continue
			}
			if err := src.SubtractQty(req.ProductID, chunk); err != nil {
				return Result{}, err
			}
			if err := dst.AddQty(req.ProductID, req.UOM.ID, chunk); err != nil {
				return Result{}, err
			}
			src.UpdatedAt, dst.UpdatedAt = now, now
			touch(src)
			touch(dst)
			res.TrxLines = append(res.TrxLines,
				l.trxLine(newID(), trxID, src.ID, req, chunk.Neg(), now),
				l.trxLine(newID(), trxID, dst.ID, req, chunk, now),
			)
			fromSrc = fromSrc.Sub(chunk)
			remaining = remaining.Sub(chunk)
			res.QtyAllocated = res.QtyAllocated.Add(chunk)
		}
	}

	if l.DestroyEmptyHUs {
		for _, src := range l.Source {
			if touched[src.ID] && src.IsActive() && src.IsEmpty() {
				if err := src.MarkDestroyed(now); err != nil {
					return Result{}, err
				}
			}
		}
	}
	return res, nil
}

func (l *Loader) availableInSource(productID string) decimal.Decimal {
	total := decimal.Zero
	for _, src := range l.Source {
		if src.IsDestroyed() {
			continue
		}
		total = total.Add(src.QtyOf(productID))
	}
	return total
}

// freeCapacity capacidad libre total de los destinos; nil si alguno no tiene límite.
func (l *Loader) freeCapacity() *decimal.Decimal {
	total := decimal.Zero
	for _, dst := range l.Destinations {
		if dst.IsDestroyed() {
			continue
		}
		free := dst.FreeCapacity()
		if free == nil {
			return nil
		}
		total = total.Add(*free)
	}
	return &total
}

func (l *Loader) trxLine(id, trxID, huID string, req Request, qty decimal.Decimal, now time.Time) *entity.HUTrxLine {
	return &entity.HUTrxLine{
		ID:        id,
		TrxID:     trxID,
		HUID:      huID,
		ProductID: req.ProductID,
		UOMID:     req.UOM.ID,
		Qty:       qty,
		Date:      req.Date,
		Ref:       req.FromRef,
		CreatedAt: now,
	}
}
