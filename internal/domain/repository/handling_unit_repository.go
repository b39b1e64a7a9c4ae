package repository

import (
	"context"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
)

// HandlingUnitRepository define el puerto de persistencia para HUs y su contenido.
// Los métodos Get* devuelven (nil, nil) si la HU no existe.
type HandlingUnitRepository interface {
	GetByID(ctx context.Context, id string) (*entity.HandlingUnit, error)
	// GetForUpdate bloquea la fila de la HU (SELECT FOR UPDATE) hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.HandlingUnit, error)
	// Save actualiza estado y reemplaza el contenido (storage) de la HU.
	Save(ctx context.Context, hu *entity.HandlingUnit) error
}

// SourceHURepository resuelve las HUs origen asignadas a una o más HUs.
type SourceHURepository interface {
	// RetrieveActualSourceHUs devuelve las HUs origen activas (bloqueadas para update).
	RetrieveActualSourceHUs(ctx context.Context, huIDs []string) ([]*entity.HandlingUnit, error)
}

// HUTrxLineRepository persiste líneas de transacción de HU.
type HUTrxLineRepository interface {
	CreateAll(ctx context.Context, lines []*entity.HUTrxLine) error
	ListByHU(ctx context.Context, huID string) ([]*entity.HUTrxLine, error)
}
