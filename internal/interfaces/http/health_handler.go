package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
)

// PingFunc comprueba una dependencia (PostgreSQL, Redis).
type PingFunc func(ctx context.Context) error

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(db, cache PingFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		out := dto.HealthResponse{Status: "ok", Database: "connected"}
		if db(ctx) != nil {
			out.Database = "error"
			out.Status = "degraded"
		}
		if cache != nil {
			out.Cache = "connected"
			if cache(ctx) != nil {
				out.Cache = "error"
				out.Status = "degraded"
			}
		}
		status := fiber.StatusOK
		if out.Status != "ok" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(out)
	}
}
