package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/meinhoongagan/clinic-app/db"
	"github.com/meinhoongagan/clinic-app/models"
)

// GetDoctors returns all doctors, optionally filtered by specialization
func GetDoctors(c *fiber.Ctx) error {
	query := db.DB.
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", "doctor")

	if spec := c.Query("specialization"); spec != "" {
		query = query.Where("specialization = ?", spec)
	}

	var doctors []models.User
	if err := query.Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch doctors",
		})
	}

	for i := range doctors {
		doctors[i].Password = ""
		doctors[i].OTP = ""
	}

	return c.JSON(doctors)
}

// GetDoctor returns one doctor with their weekly schedule and absences
// preloaded, the snapshot a booking screen works from.
func GetDoctor(c *fiber.Ctx) error {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return nil
	}

	var doctor models.User
	if err := db.DB.
		Preload("WeeklySchedule", func(tx *gorm.DB) *gorm.DB { return tx.Order("day_of_week asc") }).
		Preload("Absences", func(tx *gorm.DB) *gorm.DB { return tx.Order("date asc") }).
		First(&doctor, doctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
	}

	doctor.Password = ""
	doctor.OTP = ""

	return c.JSON(doctor)
}
