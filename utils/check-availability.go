package utils

import (
	"time"

	"gorm.io/gorm"

	"github.com/meinhoongagan/clinic-app/models"
)

// CheckSlotFree reports whether a doctor has no conflicting appointment in
// the given window. Conflicting rows are locked so a concurrent booking in
// the same transaction window can't grab the slot twice.
func CheckSlotFree(tx *gorm.DB, doctorID uint, startTime time.Time, endTime time.Time) (bool, error) {
	var existing models.Appointment
	err := tx.Raw(`
		SELECT *
		FROM appointments
		WHERE doctor_id = ?
		  AND deleted_at IS NULL
		  AND status IN ('pending', 'confirmed')
		  AND (
			(start_time < ? AND end_time > ?) OR
			(start_time >= ? AND start_time < ?)
		  )
		LIMIT 1
		FOR UPDATE
	`, doctorID, endTime, startTime, startTime, endTime).
		Scan(&existing).Error
	if err != nil {
		return false, err
	}

	return existing.ID == 0, nil
}
