package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/meinhoongagan/clinic-app/availability"
	"github.com/meinhoongagan/clinic-app/db"
	"github.com/meinhoongagan/clinic-app/models"
	"github.com/meinhoongagan/clinic-app/redis"
	"github.com/meinhoongagan/clinic-app/utils"
)

// CreateAppointment books a slot for the logged-in patient. The requested
// slot must lie inside the doctor's resolved availability for that date and
// must not collide with another booking.
func CreateAppointment(c *fiber.Ctx) error {
	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var body struct {
		DoctorID  uint   `json:"doctor_id"`
		StartTime string `json:"start_time"` // RFC 3339
		Reason    string `json:"reason"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	startTime, err := time.Parse(time.RFC3339, body.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid start_time, expected RFC 3339 timestamp",
		})
	}
	startTime = startTime.In(time.Local)
	endTime := startTime.Add(utils.SlotMinutes * time.Minute)

	var doctor models.User
	if err := db.DB.Preload("Role").First(&doctor, body.DoctorID).Error; err != nil || doctor.Role.Name != "doctor" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
	}

	// The requested window has to fit inside the doctor's open ranges for
	// that day, absences included.
	rows, err := loadOrCreateSchedule(doctor.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load weekly schedule",
		})
	}
	var absences []models.Absence
	if err := db.DB.Where("doctor_id = ? AND date = ?", doctor.ID, startTime.Format("2006-01-02")).Order("date asc, id asc").Find(&absences).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load absences",
		})
	}

	day, err := availability.Resolve(models.ScheduleEntries(rows), models.AbsenceInputs(absences), startTime)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve availability: " + err.Error(),
		})
	}
	if !day.Working || !withinOpenRanges(day.Open, clockOf(startTime), clockOf(endTime)) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Requested time is outside the doctor's availability",
		})
	}

	appointment := models.Appointment{
		Reason:    body.Reason,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    models.StatusPending,
		DoctorID:  doctor.ID,
		PatientID: patientID,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		free, err := utils.CheckSlotFree(tx, doctor.ID, startTime, endTime)
		if err != nil {
			return err
		}
		if !free {
			return fmt.Errorf("time slot not available")
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Time slot not available or failed to create appointment",
		})
	}

	redis.InvalidateAvailability(doctor.ID)

	var patient models.User
	if err := db.DB.First(&patient, patientID).Error; err == nil {
		emailBody := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your appointment has been requested.</p>
			<ul>
				<li><strong>Doctor:</strong> %s</li>
				<li><strong>Start Time:</strong> %s</li>
				<li><strong>End Time:</strong> %s</li>
				<li><strong>Status:</strong> %s</li>
			</ul>
		`, patient.Name, doctor.Name,
			appointment.StartTime.Format("2006-01-02 15:04"),
			appointment.EndTime.Format("2006-01-02 15:04"),
			appointment.Status)
		if err := utils.SendEmail(patient.Email, "Appointment requested", emailBody); err != nil {
			log.Printf("Failed to send booking email to %s: %v", patient.Email, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAppointment returns one appointment with doctor and patient preloaded
func GetAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := db.DB.Preload("Doctor").Preload("Patient").First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	return c.JSON(appointment)
}

// UpdateAppointmentStatus moves an appointment through its state machine:
// pending -> confirmed/canceled, confirmed -> completed/canceled.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.AppointmentStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, body.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	redis.InvalidateAvailability(appointment.DoctorID)

	return c.JSON(appointment)
}

// CancelAppointment lets the booking patient cancel their own appointment.
func CancelAppointment(c *fiber.Ctx) error {
	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	role, _ := c.Locals("role").(string)
	if appointment.PatientID != patientID && role != "admin" && role != "staff" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only cancel your own appointments",
		})
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	redis.InvalidateAvailability(appointment.DoctorID)

	return c.JSON(appointment)
}

// GetMyAppointments returns the logged-in patient's appointments
func GetMyAppointments(c *fiber.Ctx) error {
	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("start_time asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch appointments",
		})
	}

	return c.JSON(appointments)
}

// GetDoctorUpcomingAppointments returns upcoming appointments for the
// logged-in doctor, optionally filtered by day/week/month.
func GetDoctorUpcomingAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)
	if role != "doctor" && role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied. Only doctors can access this endpoint.",
		})
	}

	now := time.Now()
	startDate := now
	endDate := now.AddDate(0, 1, 0)

	dateFilter := c.Query("filter", "month")
	switch dateFilter {
	case "today":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	case "week":
		endDate = now.AddDate(0, 0, 7)
	case "month":
		endDate = now.AddDate(0, 1, 0)
	}

	var appointments []models.Appointment
	err := db.DB.Preload("Patient").
		Where("doctor_id = ?", userID).
		Where("start_time >= ? AND start_time <= ?", startDate, endDate).
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Order("start_time asc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
		"filter":       dateFilter,
	})
}

// withinOpenRanges reports whether [start, end) fits entirely inside one of
// the open ranges.
func withinOpenRanges(open []availability.TimeRange, start, end availability.TimeOfDay) bool {
	for _, window := range open {
		if start >= window.Start && end <= window.End {
			return true
		}
	}
	return false
}
