package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

var _ repository.SourceHURepository = (*SourceHURepo)(nil)

// SourceHURepo resuelve las HUs origen registradas en source_hus.
type SourceHURepo struct {
	q Querier
}

// NewSourceHURepository construye el adaptador. Pasar pool o tx (Querier).
func NewSourceHURepository(q Querier) *SourceHURepo {
	return &SourceHURepo{q: q}
}

// RetrieveActualSourceHUs devuelve las HUs origen activas, bloqueadas para update, sin repetidos.
func (r *SourceHURepo) RetrieveActualSourceHUs(ctx context.Context, huIDs []string) ([]*entity.HandlingUnit, error) {
	if len(huIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + huColumns + `
		FROM handling_units hu
		JOIN source_hus s ON s.source_hu_id = hu.id
		WHERE s.hu_id = ANY($1) AND hu.status = $2
		ORDER BY hu.created_at, hu.id
		FOR UPDATE OF hu`
	rows, err := r.q.Query(ctx, query, huIDs, entity.HUStatusActive.Code())
	if err != nil {
		return nil, fmt.Errorf("retrieve source HUs: %w", err)
	}
	hus, err := scanHandlingUnits(rows)
	if err != nil {
		return nil, fmt.Errorf("scan source HUs: %w", err)
	}

	seen := make(map[string]bool, len(hus))
	out := hus[:0]
	for _, hu := range hus {
		if !seen[hu.ID] {
			seen[hu.ID] = true
			out = append(out, hu)
		}
	}
	if err := loadStorage(ctx, r.q, out); err != nil {
		return nil, err
	}
	return out, nil
}
