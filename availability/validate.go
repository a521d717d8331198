package availability

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of entries a weekly schedule must contain.
const DaysPerWeek = 7

// WeeklyEntry is one day of a doctor's recurring schedule.
// DayOfWeek runs 1=Monday .. 7=Sunday.
type WeeklyEntry struct {
	DayOfWeek    int    `json:"day_of_week"`
	IsWorkingDay bool   `json:"is_working_day"`
	StartTime    string `json:"start_time"` // "HH:MM", empty when not working
	EndTime      string `json:"end_time"`   // "HH:MM", empty when not working
}

// AbsenceInput is a dated exception to the weekly schedule.
type AbsenceInput struct {
	Date      time.Time `json:"date"`
	IsFullDay bool      `json:"is_full_day"`
	StartTime string    `json:"start_time"` // "HH:MM", empty when full day
	EndTime   string    `json:"end_time"`   // "HH:MM", empty when full day
	Reason    string    `json:"reason"`
}

var dayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

// ValidateWeeklySchedule checks a full 7-entry schedule and returns the
// normalized entries: non-working days get their times cleared. The input
// must contain exactly one entry per weekday 1..7. On rejection the error
// is a *ValidationError naming every failing field.
func ValidateWeeklySchedule(entries []WeeklyEntry) ([]WeeklyEntry, error) {
	verr := &ValidationError{}

	if len(entries) != DaysPerWeek {
		verr.add("schedule", "expected exactly %d entries, got %d", DaysPerWeek, len(entries))
		return nil, verr
	}

	seen := make(map[int]bool, DaysPerWeek)
	normalized := make([]WeeklyEntry, len(entries))

	for i, entry := range entries {
		field := fmt.Sprintf("schedule[%d]", i)

		if entry.DayOfWeek < 1 || entry.DayOfWeek > DaysPerWeek {
			verr.add(field+".dayOfWeek", "day of week must be between 1 (Monday) and 7 (Sunday)")
			continue
		}
		if seen[entry.DayOfWeek] {
			verr.add(field+".dayOfWeek", "duplicate entry for %s", dayNames[entry.DayOfWeek])
			continue
		}
		seen[entry.DayOfWeek] = true

		normalized[i] = entry
		if !entry.IsWorkingDay {
			// Times on a day off are ignored and cleared.
			normalized[i].StartTime = ""
			normalized[i].EndTime = ""
			continue
		}

		validateTimeWindow(verr, field, dayNames[entry.DayOfWeek], entry.StartTime, entry.EndTime)
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return normalized, nil
}

// ValidateAbsence checks a new absence against the calendar date of now.
// Same-day absences are allowed; anything earlier is rejected. Times on a
// full-day absence are ignored and cleared in the returned value.
func ValidateAbsence(in AbsenceInput, now time.Time) (AbsenceInput, error) {
	verr := &ValidationError{}

	if in.Date.IsZero() {
		verr.add("date", "date is required")
	} else if calendarDate(in.Date).Before(calendarDate(now)) {
		verr.add("date", "date must not be in the past")
	}

	if in.IsFullDay {
		in.StartTime = ""
		in.EndTime = ""
	} else {
		validateTimeWindow(verr, "", "the absence", in.StartTime, in.EndTime)
	}

	if err := verr.orNil(); err != nil {
		return AbsenceInput{}, err
	}
	return in, nil
}

// validateTimeWindow checks presence, HH:MM format and start < end for a
// working window. fieldPrefix is empty for top-level fields.
func validateTimeWindow(verr *ValidationError, fieldPrefix, subject, startStr, endStr string) {
	startField := "startTime"
	endField := "endTime"
	if fieldPrefix != "" {
		startField = fieldPrefix + ".startTime"
		endField = fieldPrefix + ".endTime"
	}

	ok := true
	var start, end TimeOfDay

	if startStr == "" {
		verr.add(startField, "start time is required for %s", subject)
		ok = false
	} else {
		var err error
		start, err = ParseTimeOfDay(startStr)
		if err != nil {
			verr.add(startField, "invalid start time %q: %v", startStr, err)
			ok = false
		}
	}

	if endStr == "" {
		verr.add(endField, "end time is required for %s", subject)
		ok = false
	} else {
		var err error
		end, err = ParseTimeOfDay(endStr)
		if err != nil {
			verr.add(endField, "invalid end time %q: %v", endStr, err)
			ok = false
		}
	}

	if ok && !start.Before(end) {
		verr.add(startField, "start time %s must be before end time %s", start, end)
	}
}

// calendarDate strips the time-of-day component.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
