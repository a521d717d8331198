package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/meinhoongagan/clinic-app/availability"
	"github.com/meinhoongagan/clinic-app/db"
	"github.com/meinhoongagan/clinic-app/models"
	"github.com/meinhoongagan/clinic-app/redis"
)

// GetWeeklySchedule returns a doctor's 7-day schedule, materializing and
// persisting the default Monday-Friday 09:00-17:00 pattern on first read.
func GetWeeklySchedule(c *fiber.Ctx) error {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return nil
	}

	rows, err := loadOrCreateSchedule(doctorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load weekly schedule",
		})
	}

	return c.JSON(fiber.Map{
		"doctor_id": doctorID,
		"schedule":  rows,
	})
}

// ReplaceWeeklySchedule validates and atomically replaces all 7 entries of
// a doctor's weekly schedule. Partial updates are not possible: either the
// whole new set is stored or the old one stays.
func ReplaceWeeklySchedule(c *fiber.Ctx) error {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return nil
	}
	if !requireSelfOrAdmin(c, doctorID) {
		return nil
	}

	var body struct {
		Schedule []availability.WeeklyEntry `json:"schedule"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	normalized, err := availability.ValidateWeeklySchedule(body.Schedule)
	if err != nil {
		return validationFailed(c, err)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Hard delete: soft-deleted rows would still trip the
		// (doctor_id, day_of_week) unique index on re-insert.
		if err := tx.Unscoped().Where("doctor_id = ?", doctorID).Delete(&models.WeeklySchedule{}).Error; err != nil {
			return err
		}
		for _, entry := range normalized {
			row := models.WeeklySchedule{
				DoctorID:     doctorID,
				DayOfWeek:    entry.DayOfWeek,
				IsWorkingDay: entry.IsWorkingDay,
				StartTime:    entry.StartTime,
				EndTime:      entry.EndTime,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to replace weekly schedule",
		})
	}

	redis.InvalidateAvailability(doctorID)

	var rows []models.WeeklySchedule
	db.DB.Where("doctor_id = ?", doctorID).Order("day_of_week asc").Find(&rows)

	return c.JSON(fiber.Map{
		"doctor_id": doctorID,
		"schedule":  rows,
	})
}

// ListAbsences returns a doctor's absences ordered by date.
func ListAbsences(c *fiber.Ctx) error {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return nil
	}

	var absences []models.Absence
	if err := db.DB.Where("doctor_id = ?", doctorID).Order("date asc").Find(&absences).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load absences",
		})
	}

	return c.JSON(fiber.Map{
		"doctor_id": doctorID,
		"absences":  absences,
	})
}

// CreateAbsence records a full-day or partial absence for a doctor.
// Past-dated absences are rejected; same-day is allowed.
func CreateAbsence(c *fiber.Ctx) error {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return nil
	}
	if !requireSelfOrAdmin(c, doctorID) {
		return nil
	}

	var body struct {
		Date      string `json:"date"` // "YYYY-MM-DD"
		IsFullDay bool   `json:"is_full_day"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Reason    string `json:"reason"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var date time.Time
	if body.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", body.Date, time.Local)
		if err != nil {
			return validationFailed(c, &availability.ValidationError{Fields: []availability.FieldError{
				{Field: "date", Message: "date must be in YYYY-MM-DD format"},
			}})
		}
		date = parsed
	}

	input, err := availability.ValidateAbsence(availability.AbsenceInput{
		Date:      date,
		IsFullDay: body.IsFullDay,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Reason:    body.Reason,
	}, time.Now())
	if err != nil {
		return validationFailed(c, err)
	}

	absence := models.Absence{
		DoctorID:  doctorID,
		Date:      models.Date{Time: input.Date},
		IsFullDay: input.IsFullDay,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Reason:    input.Reason,
	}
	if err := db.DB.Create(&absence).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create absence",
		})
	}

	redis.InvalidateAvailability(doctorID)

	return c.Status(fiber.StatusCreated).JSON(absence)
}

// DeleteAbsence removes one absence by id. Editing an absence is always
// delete + recreate. A missing id is a plain 404, not a server error.
func DeleteAbsence(c *fiber.Ctx) error {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return nil
	}
	if !requireSelfOrAdmin(c, doctorID) {
		return nil
	}

	var absence models.Absence
	err := db.DB.Where("doctor_id = ?", doctorID).First(&absence, c.Params("absenceID")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Absence not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load absence",
		})
	}

	if err := db.DB.Delete(&absence).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete absence",
		})
	}

	redis.InvalidateAvailability(doctorID)

	return c.SendStatus(fiber.StatusNoContent)
}

// loadOrCreateSchedule loads a doctor's 7 schedule rows, creating the
// default pattern inside one transaction when none exist yet.
func loadOrCreateSchedule(doctorID uint) ([]models.WeeklySchedule, error) {
	var rows []models.WeeklySchedule
	if err := db.DB.Where("doctor_id = ?", doctorID).Order("day_of_week asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return rows, nil
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range availability.DefaultWeeklySchedule() {
			row := models.WeeklySchedule{
				DoctorID:     doctorID,
				DayOfWeek:    entry.DayOfWeek,
				IsWorkingDay: entry.IsWorkingDay,
				StartTime:    entry.StartTime,
				EndTime:      entry.EndTime,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
