package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
	"github.com/jhoicas/Inventario-hu/internal/application/picking"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

// qtyRemover contrato del caso de uso que necesita el handler. Lo implementa
// *picking.RemoveQtyFromHUUseCase.
type qtyRemover interface {
	RemoveQty(ctx context.Context, in picking.RemoveQtyInput) (*picking.RemoveQtyResult, error)
}

// PickingHandler maneja las peticiones HTTP de picking sobre handling units (protegido).
type PickingHandler struct {
	uc  qtyRemover
	log *logger.Logger
}

// NewPickingHandler construye el handler.
func NewPickingHandler(uc qtyRemover, log *logger.Logger) *PickingHandler {
	return &PickingHandler{uc: uc, log: log}
}

// RemoveQty godoc
// @Summary      Quitar cantidad de una HU durante el picking
// @Description  Devuelve la cantidad a las HUs origen, candidato por candidato. Si la HU queda vacía
//
//	se destruye, se borran los candidatos procesados y se liberan sus slots.
//
// @Tags         picking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        huId  path  string                true  "ID de la HU"
// @Param        body  body  dto.RemoveQtyRequest  true  "product_id, qty_cu (unidad base del producto)"
// @Success      200   {object}  dto.RemoveQtyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/picking/handling-units/{huId}/remove-qty [post]
func (h *PickingHandler) RemoveQty(c *fiber.Ctx) error {
	huID := c.Params("huId")
	if huID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "huId requerido"})
	}
	var in dto.RemoveQtyRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}

	res, err := h.uc.RemoveQty(c.UserContext(), picking.RemoveQtyInput{
		HUID:      huID,
		ProductID: in.ProductID,
		QtyCU:     in.QtyCU,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(toRemoveQtyResponse(res))
}

func toRemoveQtyResponse(r *picking.RemoveQtyResult) dto.RemoveQtyResponse {
	out := dto.RemoveQtyResponse{
		HUID:                r.HUID,
		ProductID:           r.ProductID,
		QtyRequested:        r.QtyRequested,
		QtyAllocated:        r.QtyAllocated,
		HUDestroyed:         r.HUDestroyed,
		DeletedCandidateIDs: r.DeletedCandidateIDs,
		ReleasedSlotIDs:     r.ReleasedSlotIDs,
	}
	if out.DeletedCandidateIDs == nil {
		out.DeletedCandidateIDs = []string{}
	}
	if out.ReleasedSlotIDs == nil {
		out.ReleasedSlotIDs = []string{}
	}
	return out
}
