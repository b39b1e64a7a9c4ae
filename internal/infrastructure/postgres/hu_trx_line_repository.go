package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

var _ repository.HUTrxLineRepository = (*HUTrxLineRepo)(nil)

var huTrxLineColumns = []string{
	"id", "trx_id", "hu_id", "product_id", "uom_id", "qty",
	"movement_date", "ref_table", "ref_record_id", "created_at",
}

// HUTrxLineRepo líneas de transacción de HU sobre PostgreSQL.
type HUTrxLineRepo struct {
	q Querier
}

// NewHUTrxLineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHUTrxLineRepository(q Querier) *HUTrxLineRepo {
	return &HUTrxLineRepo{q: q}
}

// CreateAll inserta las líneas con COPY.
func (r *HUTrxLineRepo) CreateAll(ctx context.Context, lines []*entity.HUTrxLine) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := r.q.CopyFrom(ctx, pgx.Identifier{"hu_trx_lines"}, huTrxLineColumns,
		pgx.CopyFromSlice(len(lines), func(i int) ([]any, error) {
			l := lines[i]
			return []any{
				l.ID, l.TrxID, l.HUID, l.ProductID, l.UOMID, l.Qty,
				l.Date, l.Ref.TableName, l.Ref.RecordID, l.CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("create hu trx lines: %w", err)
	}
	return nil
}

// ListByHU líneas de una HU en orden cronológico.
func (r *HUTrxLineRepo) ListByHU(ctx context.Context, huID string) ([]*entity.HUTrxLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, trx_id, hu_id, product_id, uom_id, qty, movement_date, ref_table, ref_record_id, created_at
		FROM hu_trx_lines WHERE hu_id = $1
		ORDER BY created_at, id`, huID)
	if err != nil {
		return nil, fmt.Errorf("list hu trx lines: %w", err)
	}
	defer rows.Close()

	var out []*entity.HUTrxLine
	for rows.Next() {
		var l entity.HUTrxLine
		if err := rows.Scan(&l.ID, &l.TrxID, &l.HUID, &l.ProductID, &l.UOMID, &l.Qty,
			&l.Date, &l.Ref.TableName, &l.Ref.RecordID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan hu trx line: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
