package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

// huQuerier lo implementa *usecase.HandlingUnitUseCase.
type huQuerier interface {
	GetByID(ctx context.Context, id string) (*dto.HandlingUnitResponse, error)
	ListTrxLines(ctx context.Context, huID string) (*dto.HUTrxLineListResponse, error)
}

// HandlingUnitHandler consultas de HUs (protegido).
type HandlingUnitHandler struct {
	uc  huQuerier
	log *logger.Logger
}

// NewHandlingUnitHandler construye el handler.
func NewHandlingUnitHandler(uc huQuerier, log *logger.Logger) *HandlingUnitHandler {
	return &HandlingUnitHandler{uc: uc, log: log}
}

// GetByID godoc
// @Summary      Obtener HU con su contenido
// @Tags         handling-units
// @Security     Bearer
// @Produce      json
// @Param        huId  path      string  true  "ID de la HU"
// @Success      200   {object}  dto.HandlingUnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/handling-units/{huId} [get]
func (h *HandlingUnitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("huId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "HU_NOT_FOUND", Message: "HU no encontrada"})
	}
	return c.JSON(out)
}

// ListTrxLines godoc
// @Summary      Movimientos de una HU
// @Tags         handling-units
// @Security     Bearer
// @Produce      json
// @Param        huId  path      string  true  "ID de la HU"
// @Success      200   {object}  dto.HUTrxLineListResponse
// @Router       /api/handling-units/{huId}/trx-lines [get]
func (h *HandlingUnitHandler) ListTrxLines(c *fiber.Ctx) error {
	out, err := h.uc.ListTrxLines(c.UserContext(), c.Params("huId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
