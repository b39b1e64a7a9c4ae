package picking

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/internal/domain"
	"github.com/jhoicas/Inventario-hu/internal/domain/allocation"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

// RemoveQtyFromHUUseCase quita cantidad de una HU durante el picking y la devuelve a sus HUs origen.
// Si la HU queda destruida, borra los candidatos de picking procesados y libera sus slots.
type RemoveQtyFromHUUseCase struct {
	txRunner TxRunner
	products ProductLookup
	loader   HULoader
	slots    PickingSlotReleaser
	log      *logger.Logger
}

// NewRemoveQtyFromHUUseCase construye el caso de uso.
func NewRemoveQtyFromHUUseCase(
	txRunner TxRunner,
	products ProductLookup,
	loader HULoader,
	slots PickingSlotReleaser,
	log *logger.Logger,
) *RemoveQtyFromHUUseCase {
	return &RemoveQtyFromHUUseCase{
		txRunner: txRunner,
		products: products,
		loader:   loader,
		slots:    slots,
		log:      log,
	}
}

// RemoveQtyInput entrada: HU, producto y cantidad en la unidad base del producto (CU).
type RemoveQtyInput struct {
	HUID      string
	ProductID string
	QtyCU     decimal.Decimal
}

// RemoveQtyResult resultado de la operación.
type RemoveQtyResult struct {
	HUID                string
	ProductID           string
	QtyRequested        decimal.Decimal
	QtyAllocated        decimal.Decimal
	HUDestroyed         bool
	DeletedCandidateIDs []string
	ReleasedSlotIDs     []string
}

// RemoveQty valida precondiciones (producto, HU activa, HUs origen, candidatos) antes de mutar nada;
// luego, candidato por candidato en orden de creación, pide la cantidad pendiente y se detiene en
// cuanto lo asignado alcanza lo pedido. Todo corre en una sola transacción.
func (uc *RemoveQtyFromHUUseCase) RemoveQty(ctx context.Context, in RemoveQtyInput) (*RemoveQtyResult, error) {
	if in.HUID == "" || in.ProductID == "" || !in.QtyCU.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewPreconditionError(domain.ErrProductNotFound, "hu_id", in.HUID, "product_id", in.ProductID)
	}
	// La cantidad se quita tal cual; una fracción que la UOM no admite es un error, no se redondea.
	if !product.UOM.Represents(in.QtyCU) {
		return nil, fmt.Errorf("qty %s %s fuera de la precisión de la UOM: %w", in.QtyCU, product.UOM.Symbol, domain.ErrInvalidInput)
	}

	var out *RemoveQtyResult
	err = uc.txRunner.Run(ctx, func(uow UnitOfWork) error {
		res, err := uc.removeQty(ctx, uow, product, in.HUID, in.QtyCU)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *RemoveQtyFromHUUseCase) removeQty(
	ctx context.Context,
	uow UnitOfWork,
	product *entity.Product,
	huID string,
	qtyCU decimal.Decimal,
) (*RemoveQtyResult, error) {
	hu, err := uow.HandlingUnits().GetForUpdate(ctx, huID)
	if err != nil {
		return nil, err
	}
	if hu == nil {
		return nil, domain.NewPreconditionError(domain.ErrHUNotFound, "hu_id", huID, "product_id", product.ID)
	}
	// Si la HU destino no está activa la mercancía "desaparecería" al devolverla al origen.
	if !hu.IsActive() {
		return nil, domain.NewPreconditionError(domain.ErrHUNotActive,
			"hu_id", huID, "product_id", product.ID, "status", hu.Status.Code())
	}

	sourceHUs, err := uow.SourceHUs().RetrieveActualSourceHUs(ctx, []string{huID})
	if err != nil {
		return nil, err
	}
	if len(sourceHUs) == 0 {
		return nil, domain.NewPreconditionError(domain.ErrNoSourceHUs, "hu_id", huID, "product_id", product.ID)
	}

	candidates, err := uow.PickingCandidates().GetByHUIDs(ctx, []string{huID})
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.NewPreconditionError(domain.ErrNoPickingCandidates, "hu_id", huID, "product_id", product.ID)
	}

	spec := LoadSpec{
		Source:              []*entity.HandlingUnit{hu},
		Destinations:        sourceHUs,
		AllowPartialLoads:   true, // el picker pudo quitar más de lo que cabe en las HUs origen
		AllowPartialUnloads: true, // o más de lo que la HU contiene
		DestroyEmptyHUs:     true,
	}

	allocated := decimal.Zero
	processed := make([]*entity.PickingCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		req, err := allocation.NewRequest(
			product,
			qtyCU.Sub(allocated),
			time.Now(),
			uow.PickingCandidates().ToTableRecordReference(candidate),
			true,
		)
		if err != nil {
			return nil, err
		}
		loadResult, err := uc.loader.Load(ctx, uow, spec, req)
		if err != nil {
			return nil, err
		}
		processed = append(processed, candidate)
		allocated = allocated.Add(loadResult.QtyAllocated)

		uc.log.Info().
			Str("hu_id", huID).
			Str("product_id", product.ID).
			Str("candidate_id", candidate.ID).
			Str("qty_cu", qtyCU.String()).
			Str("qty_allocated", loadResult.QtyAllocated.String()).
			Str("load_result", loadResult.String()).
			Msg("cantidad quitada de HU")

		if allocated.GreaterThanOrEqual(qtyCU) {
			break
		}
	}

	out := &RemoveQtyResult{
		HUID:         huID,
		ProductID:    product.ID,
		QtyRequested: qtyCU,
		QtyAllocated: allocated,
	}

	reloaded, err := uow.HandlingUnits().GetByID(ctx, huID)
	if err != nil {
		return nil, err
	}
	if reloaded == nil {
		return nil, fmt.Errorf("reload HU %s: %w", huID, domain.ErrHUNotFound)
	}
	if !reloaded.IsDestroyed() {
		return out, nil
	}
	out.HUDestroyed = true

	slotIDs := entity.ExtractPickingSlotIDs(processed)
	candidateIDs := entity.PickingCandidateIDs(processed)
	if err := uow.PickingCandidates().DeleteAll(ctx, candidateIDs); err != nil {
		return nil, err
	}
	out.DeletedCandidateIDs = candidateIDs

	for _, slotID := range slotIDs {
		released := false
		err := uow.Savepoint(ctx, func(sp UnitOfWork) error {
			var err error
			released, err = uc.slots.ReleaseIfPossible(ctx, sp, slotID)
			return err
		})
		if err != nil {
			uc.log.Warn().Err(err).
				Str("hu_id", huID).
				Str("slot_id", slotID).
				Msg("no se pudo liberar el slot de picking")
			continue
		}
		if released {
			out.ReleasedSlotIDs = append(out.ReleasedSlotIDs, slotID)
		}
	}
	return out, nil
}
