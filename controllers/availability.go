package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-app/availability"
	"github.com/meinhoongagan/clinic-app/db"
	"github.com/meinhoongagan/clinic-app/models"
	"github.com/meinhoongagan/clinic-app/redis"
	"github.com/meinhoongagan/clinic-app/utils"
)

// GetDoctorAvailability resolves a doctor's effective availability for one
// date: the weekly entry minus absences, plus the bookable slot grid with
// already-taken slots removed. Responses are cached per doctor and date.
func GetDoctorAvailability(c *fiber.Ctx) error {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return nil
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter 'date' is required (YYYY-MM-DD)",
		})
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}

	if cached := redis.GetAvailability(doctorID, dateStr); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	rows, err := loadOrCreateSchedule(doctorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load weekly schedule",
		})
	}

	var absences []models.Absence
	if err := db.DB.Where("doctor_id = ? AND date = ?", doctorID, dateStr).Order("date asc, id asc").Find(&absences).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load absences",
		})
	}

	day, err := availability.Resolve(models.ScheduleEntries(rows), models.AbsenceInputs(absences), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve availability: " + err.Error(),
		})
	}

	slots := utils.BuildSlots(day.Open)
	slots, err = dropBookedSlots(doctorID, date, slots)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check booked slots",
		})
	}

	response := fiber.Map{
		"doctor_id":      doctorID,
		"date":           dateStr,
		"is_working_day": day.Working,
		"open_ranges":    day.Open,
		"slots":          slots,
	}

	if payload, err := json.Marshal(response); err == nil {
		redis.SetAvailability(doctorID, dateStr, string(payload))
	} else {
		log.Printf("Failed to marshal availability for doctor %d: %v", doctorID, err)
	}

	return c.JSON(response)
}

// dropBookedSlots removes slots that overlap a pending or confirmed
// appointment on that date.
func dropBookedSlots(doctorID uint, date time.Time, slots []availability.TimeRange) ([]availability.TimeRange, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	err := db.DB.
		Where("doctor_id = ?", doctorID).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	var free []availability.TimeRange
	for _, slot := range slots {
		taken := false
		for _, appt := range appointments {
			if slot.Start < clockOf(appt.EndTime) && clockOf(appt.StartTime) < slot.End {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, slot)
		}
	}
	if free == nil {
		free = []availability.TimeRange{}
	}
	return free, nil
}

// clockOf projects a timestamp onto its time of day.
func clockOf(t time.Time) availability.TimeOfDay {
	return availability.TimeOfDay(t.Hour()*60 + t.Minute())
}
