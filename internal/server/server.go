package server

import (
	"stockroom/internal/dashboard"
	"stockroom/internal/inventory"
	"stockroom/internal/metrics"
	"stockroom/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Options struct {
	DB          *gorm.DB
	Log         zerolog.Logger
	Metrics     *metrics.Metrics
	CORSOrigins string
}

// New builds the HTTP application. The database handle in opts is the only
// state shared between requests.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "stockroom",
		Views:                 web.NewEngine(),
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(opts.Log),
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(observe(opts.Log, opts.Metrics))
	app.Use(recover.New())
	if opts.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET,POST,OPTIONS",
		}))
	}

	registerRoutes(app, opts)
	return app
}

func registerRoutes(app *fiber.App, opts Options) {
	db := opts.DB

	app.Get("/health", HealthHandler(db))
	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics.Handler()))
	}

	app.Get("/", dashboard.HomeHandler(db))

	products := app.Group("/products")
	products.Get("/", inventory.ListProductsHandler(db))
	products.Get("/add", inventory.NewProductHandler())
	products.Post("/add", inventory.CreateProductHandler(db))
	products.Get("/:name", inventory.ShowProductHandler(db))
	products.Get("/:name/edit", inventory.EditProductHandler(db))
	products.Post("/:name/edit", inventory.UpdateProductHandler(db))

	locations := app.Group("/locations")
	locations.Get("/", inventory.ListLocationsHandler(db))
	locations.Get("/add", inventory.NewLocationHandler())
	locations.Post("/add", inventory.CreateLocationHandler(db))
	locations.Get("/:name", inventory.ShowLocationHandler(db))
	locations.Get("/:name/edit", inventory.EditLocationHandler(db))
	locations.Post("/:name/edit", inventory.UpdateLocationHandler(db))

	var obs inventory.MovementObserver
	if opts.Metrics != nil {
		obs = opts.Metrics
	}
	movements := app.Group("/movements")
	movements.Get("/", inventory.ListMovementsHandler(db))
	movements.Get("/add", inventory.NewMovementHandler(db))
	movements.Post("/add", inventory.CreateMovementHandler(db, obs))

	api := app.Group("/api")
	api.Get("/locations/:name/stock", inventory.LocationStockAPIHandler(db))
}
