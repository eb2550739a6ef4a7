package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/spec-kit/training-marketplace/internal/api/http/handlers"
	"github.com/spec-kit/training-marketplace/internal/auth"
	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/pkg/errorutil"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Admin          *handlers.AdminHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
	// LoginLimit caps login attempts per client IP and minute. Zero disables it.
	LoginLimit int
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", loginLimiter(cfg.LoginLimit), cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	events := app.Group("/events")
	events.Get("/", cfg.Events.Browse)
	events.Get("/expired", cfg.Events.Expired)
	events.Get("/:id", cfg.Events.GetEvent)

	app.Get("/dashboard", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), cfg.Dashboard.Show)

	provider := app.Group("/provider", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProvider))
	provider.Get("/events", cfg.Events.MyEvents)
	provider.Post("/events", cfg.Events.CreateEvent)
	provider.Get("/dashboard", cfg.Dashboard.Show)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/events", cfg.Admin.AllEvents)
	admin.Get("/events/pending", cfg.Admin.PendingEvents)
	admin.Post("/events/:id/approve", cfg.Admin.Approve)
	admin.Post("/events/:id/reject", cfg.Admin.Reject)
	admin.Get("/providers", cfg.Admin.Providers)
	admin.Get("/dashboard", cfg.Dashboard.Show)

	student := app.Group("/student", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleStudent))
	student.Get("/dashboard", cfg.Dashboard.Show)
}

func loginLimiter(limit int) fiber.Handler {
	if limit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return errorutil.NewDomainError("RATE_LIMITED", "too many login attempts", fiber.StatusTooManyRequests, nil)
		},
	})
}
