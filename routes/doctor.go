package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-app/controllers"
	"github.com/meinhoongagan/clinic-app/middleware"
)

// SetupDoctorRoutes configures doctor listing, weekly schedule, absence and
// availability routes
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctors")

	// Public booking-surface reads
	doctor.Get("/", controllers.GetDoctors)
	doctor.Get("/:id", controllers.GetDoctor)
	doctor.Get("/:id/schedule", controllers.GetWeeklySchedule)
	doctor.Get("/:id/absences", controllers.ListAbsences)
	doctor.Get("/:id/availability", controllers.GetDoctorAvailability)

	// Schedule management, doctor or admin only
	doctor.Put("/:id/schedule", middleware.Protected(), middleware.RequirePermission("schedules", "update"), controllers.ReplaceWeeklySchedule)
	doctor.Post("/:id/absences", middleware.Protected(), middleware.RequirePermission("absences", "create"), controllers.CreateAbsence)
	doctor.Delete("/:id/absences/:absenceID", middleware.Protected(), middleware.RequirePermission("absences", "delete"), controllers.DeleteAbsence)
}
