package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-core/internal/application/auth"
	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Electronics *stock.Shelf[entity.ElectronicItem]
	Groceries   *stock.Shelf[entity.GroceryItem]
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	Metrics     prometheus.Gatherer // nil = sin /metrics
	SwaggerFile string              // vacío o inexistente = sin /docs
	Log         *logger.Logger
}

// NewApp construye la app Fiber con middlewares, health, métricas, docs y rutas de la API.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))

	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Inventario API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
// Lecturas públicas; altas, cambios de cantidad y bajas requieren token de operador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		api.Post("/auth/token", authHandler.Login)
	}

	guard := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleOperator)}

	NewItemHandler(deps.Electronics).mount(api.Group("/electronics"), guard...)
	NewItemHandler(deps.Groceries).mount(api.Group("/groceries"), guard...)

	reports := NewReportHandler("Existencias de inventario", deps.Groceries, deps.Electronics)
	api.Get("/reports/stock.pdf", reports.StockPDF)
}
