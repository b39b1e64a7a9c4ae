package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

type productGetter interface {
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
}

// ProductHandler consulta de productos (protegido).
type ProductHandler struct {
	uc  productGetter
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc productGetter, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}
