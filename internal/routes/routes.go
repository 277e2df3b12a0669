package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/phonedrive/api/internal/config"
	"github.com/phonedrive/api/internal/handlers"
	"github.com/phonedrive/api/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	orderHandler *handlers.OrderHandler,
	appointmentHandler *handlers.AppointmentHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Legacy shared-password admin login
	api.Post("/login", authHandler.AdminLogin)

	jwtProtected := middleware.JWTProtected(cfg)
	adminRequired := middleware.AdminRequired(db, cfg)

	api.Get("/me", jwtProtected, authHandler.Me)

	// Catalog — public reads, admin writes
	api.Get("/products", catalogHandler.List)
	api.Get("/products/:id", catalogHandler.Get)
	api.Post("/products", jwtProtected, adminRequired, catalogHandler.Create)
	api.Delete("/products/:id", jwtProtected, adminRequired, catalogHandler.Delete)

	// Orders — public checkout, admin listing
	api.Post("/orders", orderHandler.Create)
	api.Get("/orders", jwtProtected, adminRequired, orderHandler.List)

	// Repair appointments — public booking, admin listing
	api.Post("/appointments", appointmentHandler.Create)
	api.Get("/appointments", jwtProtected, adminRequired, appointmentHandler.List)
	api.Get("/repairs/estimate", appointmentHandler.Estimate)
}
