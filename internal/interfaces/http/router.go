package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RemoveQty     qtyRemover
	Reservations  huReserver
	HandlingUnits huQuerier
	Products      productGetter
	JWTSecret     string
	JWTIssuer     string
	DBPing        PingFunc
	CachePing     PingFunc // nil si no hay Redis
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.DBPing, deps.CachePing))

	api := app.Group("/api")

	// Rutas protegidas (Bearer Token + rol de bodega)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(RoleAdmin, RoleBodeguero))

	// Picking
	pickingHandler := NewPickingHandler(deps.RemoveQty, deps.Log)
	protected.Post("/picking/handling-units/:huId/remove-qty", pickingHandler.RemoveQty)

	// Consultas
	huHandler := NewHandlingUnitHandler(deps.HandlingUnits, deps.Log)
	protected.Get("/handling-units/:huId", huHandler.GetByID)
	protected.Get("/handling-units/:huId/trx-lines", huHandler.ListTrxLines)
	productHandler := NewProductHandler(deps.Products, deps.Log)
	protected.Get("/products/:id", productHandler.GetByID)

	// Reservas de HU
	reservations := protected.Group("/hu-reservations")
	reservationHandler := NewReservationHandler(deps.Reservations, deps.Log)
	reservations.Post("/", reservationHandler.Create)
	reservations.Get("/hu/:huId", reservationHandler.ListByHU)
}
