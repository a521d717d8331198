package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-app/controllers"
	"github.com/meinhoongagan/clinic-app/middleware"
)

// SetupInvoiceRoutes configures billing routes for staff
func SetupInvoiceRoutes(app *fiber.App) {
	invoice := app.Group("/invoices", middleware.Protected())
	invoice.Post("/", middleware.RequirePermission("invoices", "create"), controllers.CreateInvoice)
	invoice.Get("/", middleware.RequirePermission("invoices", "read"), controllers.GetInvoices)
	invoice.Get("/:id", middleware.RequirePermission("invoices", "read"), controllers.GetInvoice)
	invoice.Patch("/:id/status", middleware.RequirePermission("invoices", "update"), controllers.UpdateInvoiceStatus)
}
