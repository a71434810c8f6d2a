package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartbite/servesoft/internal/api/http/handlers"
	"github.com/smartbite/servesoft/internal/auth"
	"github.com/smartbite/servesoft/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Catalog        *handlers.CatalogHandler
	Cart           *handlers.CartHandler
	Orders         *handlers.OrdersHandler
	Manager        *handlers.ManagerHandler
	Driver         *handlers.DriverHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	Roles          auth.RoleResolver
}

// RegisterRoutes wires HTTP routes. Role gates resolve grants fresh on every
// request; nothing role-related is cached between requests.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Get("/verify", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Auth.Verify)

	catalog := app.Group("/catalog")
	catalog.Get("/bootstrap", cfg.Catalog.Bootstrap)
	catalog.Get("/restaurants/:id/menu", cfg.Catalog.Menu)

	cart := app.Group("/cart", cfg.AuthMiddleware.Handle, auth.RequireRole(cfg.Roles, domain.RoleCustomer))
	cart.Get("/", cfg.Cart.List)
	cart.Delete("/", cfg.Cart.Clear)
	cart.Post("/items", cfg.Cart.AddItem)
	cart.Delete("/items/:id", cfg.Cart.RemoveItem)

	orders := app.Group("/orders", cfg.AuthMiddleware.Handle, auth.RequireRole(cfg.Roles, domain.RoleCustomer))
	orders.Post("/", cfg.Orders.Checkout)
	orders.Get("/", cfg.Orders.List)

	manager := app.Group("/manager", cfg.AuthMiddleware.Handle, auth.RequireRole(cfg.Roles, domain.RoleManager))
	manager.Get("/orders", cfg.Manager.ListOrders)
	manager.Patch("/orders/:id/status", cfg.Manager.UpdateOrderStatus)

	driver := app.Group("/driver", cfg.AuthMiddleware.Handle, auth.RequireRole(cfg.Roles, domain.RoleDriver))
	driver.Get("/deliveries", cfg.Driver.ListMine)
	driver.Get("/deliveries/pending", cfg.Driver.ListPending)
	driver.Post("/deliveries/:id/accept", cfg.Driver.Accept)
	driver.Post("/deliveries/:id/complete", cfg.Driver.Complete)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(cfg.Roles, domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.ListUsers)
}
