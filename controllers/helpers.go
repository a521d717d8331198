package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-app/availability"
	"github.com/meinhoongagan/clinic-app/db"
	"github.com/meinhoongagan/clinic-app/models"
)

// doctorIDParam parses the :id route parameter and checks the user exists
// and actually holds the doctor role. When ok is false the response has
// already been written.
func doctorIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor id",
		})
		return 0, false
	}

	var doctor models.User
	if err := db.DB.Preload("Role").First(&doctor, uint(id)).Error; err != nil || doctor.Role.Name != "doctor" {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
		return 0, false
	}

	return uint(id), true
}

// requireSelfOrAdmin allows the doctor themself and admins through. When ok
// is false the response has already been written.
func requireSelfOrAdmin(c *fiber.Ctx, doctorID uint) bool {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
		return false
	}
	role, _ := c.Locals("role").(string)

	if userID != doctorID && role != "admin" {
		c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only manage your own schedule",
		})
		return false
	}
	return true
}

// validationFailed renders a *ValidationError with its field list so the
// client can highlight the exact failing inputs.
func validationFailed(c *fiber.Ctx, err error) error {
	var verr *availability.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
