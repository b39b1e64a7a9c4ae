// Package allocation mueve cantidades de producto entre unidades de manipulación (HU),
// generando las líneas de transacción correspondientes.
package allocation

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
)

var (
	ErrPartialUnloadNotAllowed = errors.New("el origen no tiene cantidad suficiente y no se permite descarga parcial")
	ErrPartialLoadNotAllowed   = errors.New("el destino no tiene capacidad suficiente y no se permite carga parcial")
	ErrNoDestination           = errors.New("no hay HU destino")
)

// Request pedido de asignación de una cantidad de producto.
// FromRef queda en las líneas de transacción para trazabilidad (p. ej. el candidato de picking).
// ForceQtyAllocation ignora la capacidad de los destinos.
type Request struct {
	ProductID          string
	Qty                decimal.Decimal
	UOM                entity.UOM
	Date               time.Time
	FromRef            entity.TableRecordReference
	ForceQtyAllocation bool
}

// NewRequest valida y construye el pedido. La cantidad debe ser positiva y expresable en la
// precisión de la UOM; nunca se redondea.
func NewRequest(product *entity.Product, qty decimal.Decimal, date time.Time, fromRef entity.TableRecordReference, force bool) (Request, error) {
	if product == nil || product.ID == "" {
		return Request{}, fmt.Errorf("allocation request: %w", domain.ErrProductNotFound)
	}
	if !qty.GreaterThan(decimal.Zero) || !product.UOM.Represents(qty) {
		return Request{}, fmt.Errorf("allocation request qty %s %s: %w", qty, product.UOM.Symbol, domain.ErrInvalidInput)
	}
	return Request{
		ProductID:          product.ID,
		Qty:                qty,
		UOM:                product.UOM,
		Date:               date,
		FromRef:            fromRef,
		ForceQtyAllocation: force,
	}, nil
}

// Result resultado de una carga.
type Result struct {
	QtyToAllocate decimal.Decimal
	QtyAllocated  decimal.Decimal
	TrxLines      []*entity.HUTrxLine
	// Touched HUs modificadas (origen y destino), en orden de primera modificación.
	Touched []*entity.HandlingUnit
}

// QtyRemaining cantidad pedida que no se pudo asignar.
func (r Result) QtyRemaining() decimal.Decimal { return r.QtyToAllocate.Sub(r.QtyAllocated) }

// IsCompleted true si se asignó todo lo pedido.
func (r Result) IsCompleted() bool { return r.QtyAllocated.GreaterThanOrEqual(r.QtyToAllocate) }

func (r Result) String() string {
	return fmt.Sprintf("Result{toAllocate=%s, allocated=%s, trxLines=%d}", r.QtyToAllocate, r.QtyAllocated, len(r.TrxLines))
}
