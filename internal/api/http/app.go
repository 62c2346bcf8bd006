package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/bikehub-frontend/internal/api/http/handlers"
	"github.com/spec-kit/bikehub-frontend/internal/config"
	"github.com/spec-kit/bikehub-frontend/internal/events"
	"github.com/spec-kit/bikehub-frontend/internal/observability"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/internal/service"
	"github.com/spec-kit/bikehub-frontend/internal/session"
)

// AppDependencies is everything the web front-end is built from.
type AppDependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *observability.Metrics
	Repos   repository.Repositories
	Storage StorageFactory
	Codec   session.Decoder
	Events  events.Dispatcher
	// Checks are pinged by the readiness probe.
	Checks map[string]handlers.Pinger
}

// NewApp assembles the Fiber application: views, middlewares, services and routes.
func NewApp(deps AppDependencies) *fiber.App {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		Views:                 newViewEngine(),
		ViewsLayout:           layoutView,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, deps.Metrics, cfg.App.RequestTimeout())

	bicycles := service.NewBicycleService(deps.Repos.Bicycles)
	equipment := service.NewEquipmentService(deps.Repos.Equipment)
	stats := service.NewStatsService(deps.Repos.Stats)
	rentals := service.NewRentalService(deps.Repos.Rentals, deps.Repos.Bicycles, logger)
	payments := service.NewPaymentService(deps.Repos.PaymentMethods)

	RegisterRoutes(app, RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps.Checks),
		Session:  handlers.NewSessionHandler(),
		Admin:    handlers.NewAdminHandler(bicycles, equipment, stats),
		Customer: handlers.NewCustomerHandler(rentals, payments),
		SessionMiddleware: SessionMiddleware(SessionConfig{
			Storage: deps.Storage,
			Auth:    deps.Repos.Auth,
			Codec:   deps.Codec,
			Events:  deps.Events,
			Logger:  logger,
		}),
		CSRF: CSRFMiddleware(cfg.Storage),
	})
	return app
}
