package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/api/http/handlers"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Leases         *handlers.LeasesHandler
	Rent           *handlers.RentHandler
	Payments       *handlers.PaymentsHandler
	Maintenance    *handlers.MaintenanceHandler
	Announcements  *handlers.AnnouncementsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/webhooks/razorpay", cfg.Payments.Webhook)

	authGroup := app.Group("/auth")
	authGroup.Post("/setup", cfg.Auth.Setup)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)
	authProtected.Get("/me", cfg.Auth.Me)

	tenant := app.Group("/api/v1/tenant", cfg.AuthMiddleware.Handle, auth.RequireTenant())
	tenant.Get("/lease", cfg.Leases.GetMyLease)
	tenant.Get("/rent", cfg.Rent.GetLedger)
	tenant.Get("/rent/payments", cfg.Rent.RecentMine)
	tenant.Post("/rent/payments", cfg.Rent.RecordPayment)
	tenant.Post("/rent/checkout", cfg.Payments.Checkout)
	tenant.Post("/rent/checkout/verify", cfg.Payments.Verify)
	tenant.Get("/requests", cfg.Maintenance.ListMine)
	tenant.Post("/requests", cfg.Maintenance.Create)
	tenant.Get("/requests/:id", cfg.Maintenance.GetMine)
	tenant.Get("/announcements", cfg.Announcements.ListForTenant)
	tenant.Get("/calendar", cfg.Announcements.Calendar)

	landlord := app.Group("/api/v1/landlord", cfg.AuthMiddleware.Handle, auth.RequireLandlord())
	landlord.Get("/tenants", cfg.Leases.ListTenants)
	landlord.Post("/tenants", cfg.Leases.CreateTenant)
	landlord.Get("/leases", cfg.Leases.ListLeases)
	landlord.Post("/leases", cfg.Leases.CreateLease)
	landlord.Put("/leases/:id", cfg.Leases.UpdateLease)
	landlord.Post("/leases/:id/deactivate", cfg.Leases.DeactivateLease)
	landlord.Get("/dashboard", cfg.Rent.Dashboard)
	landlord.Get("/rent/overview", cfg.Rent.Overview)
	landlord.Get("/rent/payments", cfg.Rent.RecentPayments)
	landlord.Get("/requests", cfg.Maintenance.ListForLandlord)
	landlord.Patch("/requests/:id/status", cfg.Maintenance.UpdateStatus)
	landlord.Get("/announcements", cfg.Announcements.ListForLandlord)
	landlord.Post("/announcements", cfg.Announcements.Publish)
	landlord.Post("/announcements/:id/deactivate", cfg.Announcements.Deactivate)
}
