package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bikehub-frontend/internal/api/http/handlers"
	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Session  *handlers.SessionHandler
	Admin    *handlers.AdminHandler
	Customer *handlers.CustomerHandler
	// SessionMiddleware binds a session to every view request.
	SessionMiddleware fiber.Handler
	// CSRF guards every form POST of the view routes.
	CSRF fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	web := app.Group("", cfg.SessionMiddleware, cfg.CSRF)
	web.Get("/", cfg.Session.Home)
	web.Get(auth.LoginPath, cfg.Session.LoginPage)
	web.Post(auth.LoginPath, cfg.Session.Login)
	web.Get("/signup", cfg.Session.SignupPage)
	web.Post("/signup", cfg.Session.Signup)
	web.Post("/logout", cfg.Session.Logout)

	admin := web.Group(auth.AdminPath, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/", cfg.Admin.Index)
	admin.Get("/bicycles", cfg.Admin.Bicycles)
	admin.Post("/bicycles", cfg.Admin.CreateBicycle)
	admin.Get("/bicycles/price", cfg.Admin.PricePage)
	admin.Post("/bicycles/price", cfg.Admin.UpdatePrice)
	admin.Get("/equipments", cfg.Admin.Equipments)
	admin.Post("/equipments", cfg.Admin.CreateEquipment)
	admin.Get("/stats", cfg.Admin.Stats)

	user := web.Group(auth.CustomerPath, auth.RequireRole(domain.RoleCustomer))
	user.Get("/", cfg.Customer.Index)
	user.Get("/rental", cfg.Customer.Rental)
	user.Post("/rental/book", cfg.Customer.Book)
	user.Post("/rental/pickup", cfg.Customer.Pickup)
	user.Post("/rental/return", cfg.Customer.Return)
	user.Post("/rental/pay", cfg.Customer.Pay)
	user.Get("/payments", cfg.Customer.Payments)
	user.Post("/payments", cfg.Customer.CreatePayment)
	user.Post("/payments/:id/delete", cfg.Customer.DeletePayment)
	user.Post("/payments/:id", cfg.Customer.UpdatePayment)
}
