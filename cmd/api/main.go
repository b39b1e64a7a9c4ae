package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-hu/internal/application/picking"
	"github.com/jhoicas/Inventario-hu/internal/application/reservation"
	"github.com/jhoicas/Inventario-hu/internal/application/usecase"
	"github.com/jhoicas/Inventario-hu/internal/infrastructure/cache"
	"github.com/jhoicas/Inventario-hu/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventario-hu/internal/interfaces/http"
	"github.com/jhoicas/Inventario-hu/pkg/config"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)

	// Productos: Redis delante de PostgreSQL si REDIS_URL está definido.
	var products picking.ProductLookup = postgres.NewProductRepository(pool)
	var cachePing httpRouter.PingFunc
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		products = cache.NewProductCache(products, rdb, cfg.Redis.ProductCacheTTL, log.Component("cache"))
		cachePing = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	removeQtyUC := picking.NewRemoveQtyFromHUUseCase(
		txRunner,
		products,
		picking.NewHULoaderService(nil),
		picking.NewPickingSlotService(),
		log.Component("picking"),
	)
	reservationUC := reservation.NewHUReservationUseCase(
		txRunner,
		postgres.NewHUReservationRepository(pool),
		log.Component("reservation"),
	)
	huUC := usecase.NewHandlingUnitUseCase(
		postgres.NewHandlingUnitRepository(pool),
		postgres.NewHUTrxLineRepository(pool),
	)
	productUC := usecase.NewProductUseCase(products)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (requiere haber corrido swag init)
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Inventario HU API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		RemoveQty:     removeQtyUC,
		Reservations:  reservationUC,
		HandlingUnits: huUC,
		Products:      productUC,
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		DBPing:        pool.Ping,
		CachePing:     cachePing,
		Log:           log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
