package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

var _ repository.HandlingUnitRepository = (*HandlingUnitRepo)(nil)

const huColumns = `hu.id, hu.value, hu.warehouse_id, hu.status, hu.capacity, hu.created_at, hu.updated_at`

// HandlingUnitRepo implementación de HandlingUnitRepository sobre PostgreSQL (usable con pool o tx).
// El contenido de la HU vive en hu_storage (una fila por producto).
type HandlingUnitRepo struct {
	q Querier
}

// NewHandlingUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHandlingUnitRepository(q Querier) *HandlingUnitRepo {
	return &HandlingUnitRepo{q: q}
}

// GetByID obtiene la HU con su contenido.
func (r *HandlingUnitRepo) GetByID(ctx context.Context, id string) (*entity.HandlingUnit, error) {
	query := `SELECT ` + huColumns + ` FROM handling_units hu WHERE hu.id = $1`
	return r.get(ctx, query, id, "get handling unit")
}

// GetForUpdate obtiene la HU y bloquea la fila para update (SELECT FOR UPDATE).
func (r *HandlingUnitRepo) GetForUpdate(ctx context.Context, id string) (*entity.HandlingUnit, error) {
	query := `SELECT ` + huColumns + ` FROM handling_units hu WHERE hu.id = $1 FOR UPDATE`
	return r.get(ctx, query, id, "get handling unit for update")
}

func (r *HandlingUnitRepo) get(ctx context.Context, query, id, op string) (*entity.HandlingUnit, error) {
	hu, err := scanHandlingUnit(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := loadStorage(ctx, r.q, []*entity.HandlingUnit{hu}); err != nil {
		return nil, err
	}
	return hu, nil
}

// Save actualiza estado y capacidad, y reemplaza el contenido de la HU.
func (r *HandlingUnitRepo) Save(ctx context.Context, hu *entity.HandlingUnit) error {
	if hu.UpdatedAt.IsZero() {
		hu.UpdatedAt = time.Now()
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE handling_units SET status = $2, capacity = $3, updated_at = $4
		WHERE id = $1`,
		hu.ID, hu.Status.Code(), nullDecimal(hu.Capacity), hu.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update handling unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update handling unit %s: %w", hu.ID, domain.ErrHUNotFound)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM hu_storage WHERE hu_id = $1`, hu.ID)
	for _, s := range hu.Storage {
		if !s.Qty.GreaterThan(decimal.Zero) {
			continue
		}
		batch.Queue(`
			INSERT INTO hu_storage (hu_id, product_id, uom_id, qty)
			VALUES ($1, $2, $3, $4)`,
			hu.ID, s.ProductID, s.UOMID, s.Qty,
		)
	}
	results := r.q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("save hu storage: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("save hu storage: %w", err)
	}
	return nil
}

func scanHandlingUnit(row pgx.Row) (*entity.HandlingUnit, error) {
	var (
		hu       entity.HandlingUnit
		status   string
		capacity decimal.NullDecimal
	)
	if err := row.Scan(&hu.ID, &hu.Value, &hu.WarehouseID, &status, &capacity, &hu.CreatedAt, &hu.UpdatedAt); err != nil {
		return nil, err
	}
	st, err := entity.HUStatusOfCode(status)
	if err != nil {
		return nil, fmt.Errorf("handling unit %s: %w", hu.ID, err)
	}
	hu.Status = st
	if capacity.Valid {
		c := capacity.Decimal
		hu.Capacity = &c
	}
	return &hu, nil
}

func scanHandlingUnits(rows pgx.Rows) ([]*entity.HandlingUnit, error) {
	defer rows.Close()
	var out []*entity.HandlingUnit
	for rows.Next() {
		hu, err := scanHandlingUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, hu)
	}
	return out, rows.Err()
}

// loadStorage completa Storage de las HUs con una sola consulta.
func loadStorage(ctx context.Context, q Querier, hus []*entity.HandlingUnit) error {
	if len(hus) == 0 {
		return nil
	}
	byID := make(map[string]*entity.HandlingUnit, len(hus))
	ids := make([]string, 0, len(hus))
	for _, hu := range hus {
		byID[hu.ID] = hu
		ids = append(ids, hu.ID)
	}
	rows, err := q.Query(ctx, `
		SELECT hu_id, product_id, uom_id, qty
		FROM hu_storage WHERE hu_id = ANY($1)
		ORDER BY hu_id, product_id`, ids)
	if err != nil {
		return fmt.Errorf("load hu storage: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var huID string
		var s entity.HUStorage
		if err := rows.Scan(&huID, &s.ProductID, &s.UOMID, &s.Qty); err != nil {
			return fmt.Errorf("scan hu storage: %w", err)
		}
		if hu, ok := byID[huID]; ok {
			hu.Storage = append(hu.Storage, s)
		}
	}
	return rows.Err()
}
