package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/pkg/refenum"
)

// HUStatus estado de una unidad de manipulación (lista de referencia, se persiste por código).
type HUStatus string

const (
	HUStatusPlanning  HUStatus = "P" // planificada
	HUStatusActive    HUStatus = "A" // activa, en stock
	HUStatusDestroyed HUStatus = "D" // destruida (vacía)
	HUStatusPicked    HUStatus = "S" // pickeada
	HUStatusShipped   HUStatus = "E" // despachada
	HUStatusIssued    HUStatus = "I" // consumida
)

var huStatusIndex = refenum.NewIndex("HUStatus",
	HUStatusPlanning, HUStatusActive, HUStatusDestroyed, HUStatusPicked, HUStatusShipped, HUStatusIssued,
)

// Code devuelve el código persistido.
func (s HUStatus) Code() string { return string(s) }

// HUStatusOfCode resuelve un código de estado; códigos desconocidos son error.
func HUStatusOfCode(code string) (HUStatus, error) {
	return huStatusIndex.OfCode(code)
}

// HUStorage cantidad de un producto contenida en una HU.
type HUStorage struct {
	ProductID string
	UOMID     string
	Qty       decimal.Decimal
}

// HandlingUnit contenedor físico/lógico de stock (pallet, caja) con su contenido por producto.
// Capacity nil = sin límite. Invariante: una HU destruida no contiene cantidad.
type HandlingUnit struct {
	ID          string
	Value       string
	WarehouseID string
	Status      HUStatus
	Capacity    *decimal.Decimal
	Storage     []HUStorage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (h *HandlingUnit) IsActive() bool    { return h.Status == HUStatusActive }
func (h *HandlingUnit) IsDestroyed() bool { return h.Status == HUStatusDestroyed }

// QtyOf cantidad del producto en la HU.
func (h *HandlingUnit) QtyOf(productID string) decimal.Decimal {
	for _, s := range h.Storage {
		if s.ProductID == productID {
			return s.Qty
		}
	}
	return decimal.Zero
}

// TotalQty suma de todas las cantidades (para capacidad).
func (h *HandlingUnit) TotalQty() decimal.Decimal {
	total := decimal.Zero
	for _, s := range h.Storage {
		total = total.Add(s.Qty)
	}
	return total
}

// IsEmpty true si no queda cantidad positiva de ningún producto.
func (h *HandlingUnit) IsEmpty() bool {
	for _, s := range h.Storage {
		if s.Qty.GreaterThan(decimal.Zero) {
			return false
		}
	}
	return true
}

// FreeCapacity capacidad libre; nil si la HU no tiene límite.
func (h *HandlingUnit) FreeCapacity() *decimal.Decimal {
	if h.Capacity == nil {
		return nil
	}
	free := h.Capacity.Sub(h.TotalQty())
	if free.LessThan(decimal.Zero) {
		free = decimal.Zero
	}
	return &free
}

// AddQty suma cantidad de un producto.
func (h *HandlingUnit) AddQty(productID, uomID string, qty decimal.Decimal) error {
	if h.IsDestroyed() {
		return fmt.Errorf("add qty to HU %s: %w", h.ID, domain.ErrHUNotActive)
	}
	for i := range h.Storage {
		if h.Storage[i].ProductID == productID {
			h.Storage[i].Qty = h.Storage[i].Qty.Add(qty)
			return nil
		}
	}
	h.Storage = append(h.Storage, HUStorage{ProductID: productID, UOMID: uomID, Qty: qty})
	return nil
}

// SubtractQty resta cantidad de un producto; no permite quedar en negativo.
func (h *HandlingUnit) SubtractQty(productID string, qty decimal.Decimal) error {
	for i := range h.Storage {
		if h.Storage[i].ProductID != productID {
			continue
		}
		if h.Storage[i].Qty.LessThan(qty) {
			return fmt.Errorf("subtract qty from HU %s: %w", h.ID, domain.ErrInsufficientStock)
		}
		h.Storage[i].Qty = h.Storage[i].Qty.Sub(qty)
		return nil
	}
	return fmt.Errorf("subtract qty from HU %s: %w", h.ID, domain.ErrInsufficientStock)
}

// MarkDestroyed pasa la HU a Destroyed; falla si aún contiene cantidad.
func (h *HandlingUnit) MarkDestroyed(now time.Time) error {
	if !h.IsEmpty() {
		return fmt.Errorf("destroy HU %s: %w", h.ID, domain.ErrHUNotEmpty)
	}
	h.Status = HUStatusDestroyed
	h.Storage = nil
	h.UpdatedAt = now
	return nil
}
