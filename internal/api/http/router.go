package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/http/handlers"
	"github.com/spec-kit/shop-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Products       *handlers.ProductsHandler
	Cart           *handlers.CartHandler
	Rentals        *handlers.RentalsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
	Audit          *AuditRecorder
	LoginLimiter   *LoginRateLimiter
}

// RegisterRoutes wires HTTP routes. The token validator and the audit
// recorder run on every route; guards are attached per route.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.AuthMiddleware.Authenticate)
	app.Use(cfg.Audit.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.LoginLimiter.Handle, cfg.Auth.Login)
	authGroup.Post("/admin/login", cfg.LoginLimiter.Handle, cfg.Auth.AdminLogin)
	authGroup.Post("/logout", auth.RequireAuthenticated(), cfg.Auth.Logout)

	users := app.Group("/users")
	users.Post("/", cfg.Users.Create)
	users.Get("/me", auth.RequireAuthenticated(), cfg.Users.Me)
	users.Delete("/me", auth.RequireAuthenticated(), cfg.Users.DeleteMe)

	products := app.Group("/products")
	products.Get("/", auth.RequireAuthenticated(), cfg.Products.List)
	products.Post("/", auth.RequireAdmin(), cfg.Products.Create)
	products.Get("/:productId", auth.RequireAuthenticated(), cfg.Products.Get)
	products.Patch("/:productId", auth.RequireAdmin(), cfg.Products.Update)
	products.Delete("/:productId", auth.RequireAdmin(), cfg.Products.Delete)
	products.Get("/:productId/image", cfg.Products.GetImage)
	products.Post("/:productId/image", auth.RequireAdmin(), cfg.Products.UploadImage)
	products.Get("/:productId/variants", auth.RequireAuthenticated(), cfg.Products.ListVariants)
	products.Post("/:productId/variants", auth.RequireAdmin(), cfg.Products.AddVariant)

	variants := app.Group("/variants")
	variants.Get("/:variantId", auth.RequireAuthenticated(), cfg.Products.GetVariant)
	variants.Patch("/:variantId", auth.RequireAdmin(), cfg.Products.UpdateVariant)
	variants.Delete("/:variantId", auth.RequireAdmin(), cfg.Products.DeleteVariant)

	cart := app.Group("/cart", auth.RequireAuthenticated())
	cart.Get("/", cfg.Cart.Get)
	cart.Post("/items", cfg.Cart.AddItem)

	rentals := app.Group("/rentals", auth.RequireAuthenticated())
	rentals.Post("/", cfg.Rentals.Create)
	rentals.Get("/", cfg.Rentals.List)
	rentals.Get("/:rentalId", cfg.Rentals.Get)
	rentals.Put("/:rentalId", cfg.Rentals.Update)

	admin := app.Group("/admin")
	admin.Get("/stats", auth.RequireAdmin(), cfg.Admin.Stats)
	admin.Get("/audit-logs", auth.RequireSuperAdmin(), cfg.Admin.AuditLogs)
}
