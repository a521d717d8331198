package models

import (
	"gorm.io/gorm"

	"github.com/meinhoongagan/clinic-app/availability"
)

// WeeklySchedule is one row of a doctor's recurring schedule. A doctor has
// exactly 7 rows once materialized, one per DayOfWeek (1=Monday..7=Sunday),
// and the set is only ever replaced as a whole.
type WeeklySchedule struct {
	gorm.Model
	DoctorID     uint   `json:"doctor_id" gorm:"uniqueIndex:idx_doctor_day"`
	Doctor       User   `json:"-" gorm:"foreignKey:DoctorID"`
	DayOfWeek    int    `json:"day_of_week" gorm:"uniqueIndex:idx_doctor_day"`
	IsWorkingDay bool   `json:"is_working_day"`
	StartTime    string `json:"start_time"` // "HH:MM" 24h, empty when not working
	EndTime      string `json:"end_time"`   // "HH:MM" 24h, empty when not working
}

// Absence is a dated exception that removes or reduces a doctor's
// availability on one calendar date. Absences are created and deleted,
// never updated in place.
type Absence struct {
	gorm.Model
	DoctorID  uint   `json:"doctor_id" gorm:"index"`
	Doctor    User   `json:"-" gorm:"foreignKey:DoctorID"`
	Date      Date   `json:"date" gorm:"type:date"`
	IsFullDay bool   `json:"is_full_day"`
	StartTime string `json:"start_time"` // "HH:MM", empty when full day
	EndTime   string `json:"end_time"`   // "HH:MM", empty when full day
	Reason    string `json:"reason"`
}

// ToEntry converts the row to the resolver's weekly entry type.
func (w WeeklySchedule) ToEntry() availability.WeeklyEntry {
	return availability.WeeklyEntry{
		DayOfWeek:    w.DayOfWeek,
		IsWorkingDay: w.IsWorkingDay,
		StartTime:    w.StartTime,
		EndTime:      w.EndTime,
	}
}

// ToInput converts the row to the resolver's absence type.
func (a Absence) ToInput() availability.AbsenceInput {
	return availability.AbsenceInput{
		Date:      a.Date.Time,
		IsFullDay: a.IsFullDay,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Reason:    a.Reason,
	}
}

// ScheduleEntries converts a doctor's schedule rows for the resolver.
func ScheduleEntries(rows []WeeklySchedule) []availability.WeeklyEntry {
	entries := make([]availability.WeeklyEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.ToEntry()
	}
	return entries
}

// AbsenceInputs converts a doctor's absence rows for the resolver.
func AbsenceInputs(rows []Absence) []availability.AbsenceInput {
	inputs := make([]availability.AbsenceInput, len(rows))
	for i, row := range rows {
		inputs[i] = row.ToInput()
	}
	return inputs
}
