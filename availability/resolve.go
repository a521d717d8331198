package availability

import (
	"fmt"
	"time"
)

// DayAvailability is the effective availability for one concrete date.
// Working reflects the weekly entry after full-day absences; Open holds the
// remaining windows in chronological order and may be empty even on a
// working day when partial absences cover the whole window.
type DayAvailability struct {
	Working bool        `json:"is_working_day"`
	Open    []TimeRange `json:"open_ranges"`
}

// Resolve computes the effective availability for date by applying the
// doctor's absences to the weekly schedule entry for that weekday.
//
// A full-day absence wins over everything. Partial absences are subtracted
// cumulatively in the order given, which also makes the behavior
// deterministic if more than one absence was stored for the same date.
// Empty remainders are dropped. Pure function, no I/O.
func Resolve(schedule []WeeklyEntry, absences []AbsenceInput, date time.Time) (DayAvailability, error) {
	entry, found := entryFor(schedule, date)
	if !found || !entry.IsWorkingDay {
		return DayAvailability{Working: false}, nil
	}

	start, err := ParseTimeOfDay(entry.StartTime)
	if err != nil {
		return DayAvailability{}, fmt.Errorf("schedule entry for %s has invalid start time %q: %w", dayNames[entry.DayOfWeek], entry.StartTime, err)
	}
	end, err := ParseTimeOfDay(entry.EndTime)
	if err != nil {
		return DayAvailability{}, fmt.Errorf("schedule entry for %s has invalid end time %q: %w", dayNames[entry.DayOfWeek], entry.EndTime, err)
	}

	open := []TimeRange{{Start: start, End: end}}

	for _, absence := range absences {
		if !sameDate(absence.Date, date) {
			continue
		}
		if absence.IsFullDay {
			return DayAvailability{Working: false}, nil
		}

		blockStart, err := ParseTimeOfDay(absence.StartTime)
		if err != nil {
			return DayAvailability{}, fmt.Errorf("absence on %s has invalid start time %q: %w", absence.Date.Format("2006-01-02"), absence.StartTime, err)
		}
		blockEnd, err := ParseTimeOfDay(absence.EndTime)
		if err != nil {
			return DayAvailability{}, fmt.Errorf("absence on %s has invalid end time %q: %w", absence.Date.Format("2006-01-02"), absence.EndTime, err)
		}
		block := TimeRange{Start: blockStart, End: blockEnd}

		var remaining []TimeRange
		for _, window := range open {
			remaining = append(remaining, window.Subtract(block)...)
		}
		open = remaining
	}

	if open == nil {
		open = []TimeRange{}
	}
	return DayAvailability{Working: true, Open: open}, nil
}

// Weekday converts date's weekday to the 1=Monday .. 7=Sunday numbering
// used by weekly schedule entries.
func Weekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func entryFor(schedule []WeeklyEntry, date time.Time) (WeeklyEntry, bool) {
	day := Weekday(date)
	for _, entry := range schedule {
		if entry.DayOfWeek == day {
			return entry, true
		}
	}
	return WeeklyEntry{}, false
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DefaultWeeklySchedule is the Monday-Friday 09:00-17:00 pattern that gets
// materialized for a doctor who has never saved a schedule.
func DefaultWeeklySchedule() []WeeklyEntry {
	entries := make([]WeeklyEntry, 0, DaysPerWeek)
	for day := 1; day <= DaysPerWeek; day++ {
		entry := WeeklyEntry{DayOfWeek: day}
		if day <= 5 {
			entry.IsWorkingDay = true
			entry.StartTime = "09:00"
			entry.EndTime = "17:00"
		}
		entries = append(entries, entry)
	}
	return entries
}
