package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

// huReserver lo implementa *reservation.HUReservationUseCase.
type huReserver interface {
	Reserve(ctx context.Context, in dto.CreateHUReservationRequest) (*dto.HUReservationResponse, error)
	ListByHU(ctx context.Context, huID string) (*dto.HUReservationListResponse, error)
}

// ReservationHandler reservas de HU (protegido).
type ReservationHandler struct {
	uc  huReserver
	log *logger.Logger
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc huReserver, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Reservar cantidad de una HU
// @Description  Exactamente uno de sales_order_line_id o project_line.
// @Tags         hu-reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHUReservationRequest  true  "hu_id, product_id, qty y documento origen"
// @Success      201   {object}  dto.HUReservationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/hu-reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHUReservationRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Reserve(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByHU godoc
// @Summary      Reservas de una HU
// @Tags         hu-reservations
// @Security     Bearer
// @Produce      json
// @Param        huId  path  string  true  "ID de la HU"
// @Success      200   {object}  dto.HUReservationListResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/hu-reservations/hu/{huId} [get]
func (h *ReservationHandler) ListByHU(c *fiber.Ctx) error {
	out, err := h.uc.ListByHU(c.UserContext(), c.Params("huId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
