package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
	docref "github.com/jhoicas/Inventario-hu/internal/domain/reservation"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

// HUReservationUseCase reserva cantidad de una HU para una línea de pedido o de proyecto.
type HUReservationUseCase struct {
	txRunner     TxRunner
	reservations repository.HUReservationRepository
	log          *logger.Logger
}

// NewHUReservationUseCase construye el caso de uso.
func NewHUReservationUseCase(txRunner TxRunner, reservations repository.HUReservationRepository, log *logger.Logger) *HUReservationUseCase {
	return &HUReservationUseCase{txRunner: txRunner, reservations: reservations, log: log}
}

// Reserve crea la reserva. La HU debe existir y estar activa, y la cantidad no puede superar
// lo que contiene del producto menos lo ya reservado.
func (uc *HUReservationUseCase) Reserve(ctx context.Context, in dto.CreateHUReservationRequest) (*dto.HUReservationResponse, error) {
	if in.HUID == "" || in.ProductID == "" || !in.Qty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	ref, err := toDocRef(in)
	if err != nil {
		return nil, err
	}

	r := &entity.HUReservation{
		ID:        uuid.New().String(),
		HUID:      in.HUID,
		ProductID: in.ProductID,
		Qty:       in.Qty,
		DocRef:    ref,
		CreatedAt: time.Now(),
	}
	err = uc.txRunner.RunReservation(ctx, func(huRepo repository.HandlingUnitRepository, resRepo repository.HUReservationRepository) error {
		hu, err := huRepo.GetForUpdate(ctx, in.HUID)
		if err != nil {
			return err
		}
		if hu == nil {
			return domain.NewPreconditionError(domain.ErrHUNotFound, "hu_id", in.HUID)
		}
		if !hu.IsActive() {
			return domain.NewPreconditionError(domain.ErrHUNotActive, "hu_id", in.HUID, "status", hu.Status.Code())
		}
		reserved, err := resRepo.ReservedQty(ctx, in.HUID, in.ProductID)
		if err != nil {
			return err
		}
		available := hu.QtyOf(in.ProductID).Sub(reserved)
		if in.Qty.GreaterThan(available) {
			return domain.NewPreconditionError(domain.ErrInsufficientStock,
				"hu_id", in.HUID, "product_id", in.ProductID, "available", available.String())
		}
		return resRepo.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("reservation_id", r.ID).
		Str("hu_id", r.HUID).
		Str("product_id", r.ProductID).
		Str("qty", r.Qty.String()).
		Stringer("doc_ref", r.DocRef).
		Msg("reserva de HU creada")
	return toReservationResponse(r), nil
}

// ListByHU reservas de una HU, más antiguas primero.
func (uc *HUReservationUseCase) ListByHU(ctx context.Context, huID string) (*dto.HUReservationListResponse, error) {
	if huID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.reservations.ListByHU(ctx, huID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HUReservationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReservationResponse(r))
	}
	return &dto.HUReservationListResponse{Items: items}, nil
}

func toDocRef(in dto.CreateHUReservationRequest) (docref.DocRef, error) {
	var salesLine *docref.OrderLineID
	if in.SalesOrderLineID != nil {
		id := docref.OrderLineID(*in.SalesOrderLineID)
		salesLine = &id
	}
	var projectLine *docref.ProjectAndLineID
	if in.ProjectLine != nil {
		projectLine = &docref.ProjectAndLineID{ProjectID: in.ProjectLine.ProjectID, LineID: in.ProjectLine.LineID}
	}
	ref, err := docref.FromNullable(salesLine, projectLine)
	if err != nil {
		return nil, fmt.Errorf("reserva de HU %s: %w", in.HUID, err)
	}
	return ref, nil
}

func toReservationResponse(r *entity.HUReservation) *dto.HUReservationResponse {
	out := &dto.HUReservationResponse{
		ID:        r.ID,
		HUID:      r.HUID,
		ProductID: r.ProductID,
		Qty:       r.Qty,
		DocRef:    r.DocRef.String(),
		CreatedAt: r.CreatedAt,
	}
	if id, ok := r.DocRef.SalesOrderLineID(); ok {
		s := string(id)
		out.SalesOrderLineID = &s
	}
	if id, ok := r.DocRef.ProjectAndLineID(); ok {
		out.ProjectLine = &dto.ProjectLineRef{ProjectID: id.ProjectID, LineID: id.LineID}
	}
	return out
}
