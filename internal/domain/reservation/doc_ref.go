// Package reservation modela el documento que origina una reserva de HU.
package reservation

import (
	"fmt"

	"github.com/jhoicas/Inventario-hu/internal/domain"
)

// OrderLineID id de una línea de pedido de venta.
type OrderLineID string

// ProjectAndLineID id de un proyecto y de una de sus líneas.
type ProjectAndLineID struct {
	ProjectID string
	LineID    string
}

func (p ProjectAndLineID) isZero() bool { return p.ProjectID == "" || p.LineID == "" }

// DocRef documento origen de una reserva: o bien una línea de pedido de venta, o bien una línea
// de proyecto. Es un tipo suma cerrado; solo se construye con OfSalesOrderLineID,
// OfProjectAndLineID o FromNullable.
type DocRef interface {
	SalesOrderLineID() (OrderLineID, bool)
	ProjectAndLineID() (ProjectAndLineID, bool)
	String() string
	sealed()
}

type salesOrderLineRef struct{ id OrderLineID }

func (r salesOrderLineRef) SalesOrderLineID() (OrderLineID, bool)      { return r.id, true }
func (r salesOrderLineRef) ProjectAndLineID() (ProjectAndLineID, bool) { return ProjectAndLineID{}, false }
func (r salesOrderLineRef) String() string                             { return "salesOrderLine:" + string(r.id) }
func (salesOrderLineRef) sealed()                                      {}

type projectLineRef struct{ id ProjectAndLineID }

func (r projectLineRef) SalesOrderLineID() (OrderLineID, bool)      { return "", false }
func (r projectLineRef) ProjectAndLineID() (ProjectAndLineID, bool) { return r.id, true }
func (r projectLineRef) String() string {
	return fmt.Sprintf("projectLine:%s/%s", r.id.ProjectID, r.id.LineID)
}
func (projectLineRef) sealed() {}

// OfSalesOrderLineID referencia a una línea de pedido de venta.
func OfSalesOrderLineID(id OrderLineID) (DocRef, error) {
	if id == "" {
		return nil, fmt.Errorf("sales order line id vacío: %w", domain.ErrInvalidDocRef)
	}
	return salesOrderLineRef{id: id}, nil
}

// OfProjectAndLineID referencia a una línea de proyecto.
func OfProjectAndLineID(id ProjectAndLineID) (DocRef, error) {
	if id.isZero() {
		return nil, fmt.Errorf("project/line id incompleto: %w", domain.ErrInvalidDocRef)
	}
	return projectLineRef{id: id}, nil
}

// FromNullable construye la referencia desde dos opcionales (columnas nulas de la BD o un body
// HTTP). Falla si ambos o ninguno están informados.
func FromNullable(salesOrderLineID *OrderLineID, projectAndLineID *ProjectAndLineID) (DocRef, error) {
	switch {
	case salesOrderLineID != nil && projectAndLineID != nil:
		return nil, fmt.Errorf("salesOrderLineId=%s, projectAndLineId=%v: %w",
			*salesOrderLineID, *projectAndLineID, domain.ErrInvalidDocRef)
	case salesOrderLineID != nil:
		return OfSalesOrderLineID(*salesOrderLineID)
	case projectAndLineID != nil:
		return OfProjectAndLineID(*projectAndLineID)
	default:
		return nil, fmt.Errorf("ningún documento informado: %w", domain.ErrInvalidDocRef)
	}
}
