package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
	"github.com/jhoicas/Inventario-hu/internal/domain/reservation"
)

var _ repository.HUReservationRepository = (*HUReservationRepo)(nil)

// HUReservationRepo reservas de HU sobre PostgreSQL. El documento origen se guarda en dos grupos
// de columnas nulas (sales_order_line_id | project_id + project_line_id) protegidos por un CHECK.
type HUReservationRepo struct {
	q Querier
}

// NewHUReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHUReservationRepository(q Querier) *HUReservationRepo {
	return &HUReservationRepo{q: q}
}

// docRefColumns valores de columna para un DocRef.
type docRefColumns struct {
	SalesOrderLineID *string
	ProjectID        *string
	ProjectLineID    *string
}

func toDocRefColumns(ref reservation.DocRef) docRefColumns {
	var c docRefColumns
	if id, ok := ref.SalesOrderLineID(); ok {
		c.SalesOrderLineID = nullString(string(id))
	}
	if id, ok := ref.ProjectAndLineID(); ok {
		c.ProjectID = nullString(id.ProjectID)
		c.ProjectLineID = nullString(id.LineID)
	}
	return c
}

func (c docRefColumns) toDocRef() (reservation.DocRef, error) {
	var salesLine *reservation.OrderLineID
	if c.SalesOrderLineID != nil {
		id := reservation.OrderLineID(*c.SalesOrderLineID)
		salesLine = &id
	}
	var projectLine *reservation.ProjectAndLineID
	if c.ProjectID != nil || c.ProjectLineID != nil {
		projectLine = &reservation.ProjectAndLineID{}
		if c.ProjectID != nil {
			projectLine.ProjectID = *c.ProjectID
		}
		if c.ProjectLineID != nil {
			projectLine.LineID = *c.ProjectLineID
		}
	}
	return reservation.FromNullable(salesLine, projectLine)
}

// Create inserta la reserva.
func (r *HUReservationRepo) Create(ctx context.Context, res *entity.HUReservation) error {
	cols := toDocRefColumns(res.DocRef)
	_, err := r.q.Exec(ctx, `
		INSERT INTO hu_reservations
			(id, hu_id, product_id, qty, sales_order_line_id, project_id, project_line_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.ID, res.HUID, res.ProductID, res.Qty,
		cols.SalesOrderLineID, cols.ProjectID, cols.ProjectLineID, res.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return fmt.Errorf("create hu reservation: %w", domain.ErrInvalidDocRef)
		}
		return fmt.Errorf("create hu reservation: %w", err)
	}
	return nil
}

// ListByHU reservas de la HU, más antiguas primero.
func (r *HUReservationRepo) ListByHU(ctx context.Context, huID string) ([]*entity.HUReservation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, hu_id, product_id, qty, sales_order_line_id, project_id, project_line_id, created_at
		FROM hu_reservations WHERE hu_id = $1
		ORDER BY created_at, id`, huID)
	if err != nil {
		return nil, fmt.Errorf("list hu reservations: %w", err)
	}
	defer rows.Close()

	var out []*entity.HUReservation
	for rows.Next() {
		var (
			res  entity.HUReservation
			cols docRefColumns
		)
		if err := rows.Scan(&res.ID, &res.HUID, &res.ProductID, &res.Qty,
			&cols.SalesOrderLineID, &cols.ProjectID, &cols.ProjectLineID, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan hu reservation: %w", err)
		}
		if res.DocRef, err = cols.toDocRef(); err != nil {
			return nil, fmt.Errorf("hu reservation %s: %w", res.ID, err)
		}
		out = append(out, &res)
	}
	return out, rows.Err()
}

// ReservedQty suma de lo reservado del producto en la HU.
func (r *HUReservationRepo) ReservedQty(ctx context.Context, huID, productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(qty), 0) FROM hu_reservations
		WHERE hu_id = $1 AND product_id = $2`, huID, productID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reserved qty: %w", err)
	}
	return total, nil
}
