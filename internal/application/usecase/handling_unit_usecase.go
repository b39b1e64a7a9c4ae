package usecase

import (
	"context"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

// HandlingUnitUseCase consultas de HUs y de su historial de movimientos.
type HandlingUnitUseCase struct {
	repo     repository.HandlingUnitRepository
	trxLines repository.HUTrxLineRepository
}

// NewHandlingUnitUseCase construye el caso de uso.
func NewHandlingUnitUseCase(repo repository.HandlingUnitRepository, trxLines repository.HUTrxLineRepository) *HandlingUnitUseCase {
	return &HandlingUnitUseCase{repo: repo, trxLines: trxLines}
}

// GetByID obtiene una HU por ID. (nil, nil) si no existe.
func (uc *HandlingUnitUseCase) GetByID(ctx context.Context, id string) (*dto.HandlingUnitResponse, error) {
	hu, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hu == nil {
		return nil, nil
	}
	return toHandlingUnitResponse(hu), nil
}

// ListTrxLines líneas de transacción de la HU en orden cronológico.
func (uc *HandlingUnitUseCase) ListTrxLines(ctx context.Context, huID string) (*dto.HUTrxLineListResponse, error) {
	lines, err := uc.trxLines.ListByHU(ctx, huID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HUTrxLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.HUTrxLineResponse{
			ID:          l.ID,
			TrxID:       l.TrxID,
			ProductID:   l.ProductID,
			UOMID:       l.UOMID,
			Qty:         l.Qty,
			Date:        l.Date,
			RefTable:    l.Ref.TableName,
			RefRecordID: l.Ref.RecordID,
		})
	}
	return &dto.HUTrxLineListResponse{Items: items}, nil
}

func toHandlingUnitResponse(hu *entity.HandlingUnit) *dto.HandlingUnitResponse {
	storage := make([]dto.HUStorageResponse, 0, len(hu.Storage))
	for _, s := range hu.Storage {
		storage = append(storage, dto.HUStorageResponse{ProductID: s.ProductID, UOMID: s.UOMID, Qty: s.Qty})
	}
	return &dto.HandlingUnitResponse{
		ID:          hu.ID,
		Value:       hu.Value,
		WarehouseID: hu.WarehouseID,
		Status:      hu.Status.Code(),
		Capacity:    hu.Capacity,
		Storage:     storage,
		CreatedAt:   hu.CreatedAt,
		UpdatedAt:   hu.UpdatedAt,
	}
}
