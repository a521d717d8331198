package availability

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fullWeek() []WeeklyEntry {
	return DefaultWeeklySchedule()
}

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return verr.Fields
}

func hasFieldError(fields []FieldError, field string) bool {
	for _, f := range fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func TestValidateWeeklyScheduleAcceptsDefault(t *testing.T) {
	normalized, err := ValidateWeeklySchedule(fullWeek())
	if err != nil {
		t.Fatalf("default schedule should validate, got %v", err)
	}
	if len(normalized) != DaysPerWeek {
		t.Fatalf("expected %d entries, got %d", DaysPerWeek, len(normalized))
	}
}

func TestValidateWeeklyScheduleWrongCount(t *testing.T) {
	_, err := ValidateWeeklySchedule(fullWeek()[:5])
	fields := fieldErrors(t, err)
	if !hasFieldError(fields, "schedule") {
		t.Errorf("expected error on schedule, got %v", fields)
	}
}

func TestValidateWeeklyScheduleDuplicateDay(t *testing.T) {
	entries := fullWeek()
	entries[1].DayOfWeek = 1

	_, err := ValidateWeeklySchedule(entries)
	fields := fieldErrors(t, err)
	if !hasFieldError(fields, "schedule[1].dayOfWeek") {
		t.Errorf("expected duplicate-day error on schedule[1].dayOfWeek, got %v", fields)
	}
}

func TestValidateWeeklyScheduleMissingStartTime(t *testing.T) {
	entries := fullWeek()
	// Wednesday working with no start time.
	entries[2].StartTime = ""

	_, err := ValidateWeeklySchedule(entries)
	fields := fieldErrors(t, err)
	if !hasFieldError(fields, "schedule[2].startTime") {
		t.Errorf("expected error on schedule[2].startTime, got %v", fields)
	}
	for _, f := range fields {
		if f.Field == "schedule[2].startTime" && !strings.Contains(f.Message, "Wednesday") {
			t.Errorf("message should name Wednesday, got %q", f.Message)
		}
	}
}

func TestValidateWeeklyScheduleMalformedTime(t *testing.T) {
	entries := fullWeek()
	entries[0].EndTime = "17h00"

	_, err := ValidateWeeklySchedule(entries)
	fields := fieldErrors(t, err)
	if !hasFieldError(fields, "schedule[0].endTime") {
		t.Errorf("expected error on schedule[0].endTime, got %v", fields)
	}
}

func TestValidateWeeklyScheduleStartNotBeforeEnd(t *testing.T) {
	entries := fullWeek()
	entries[4].StartTime = "17:00"
	entries[4].EndTime = "09:00"

	_, err := ValidateWeeklySchedule(entries)
	fields := fieldErrors(t, err)
	if !hasFieldError(fields, "schedule[4].startTime") {
		t.Errorf("expected ordering error on schedule[4].startTime, got %v", fields)
	}

	entries[4].EndTime = "17:00" // start == end
	_, err = ValidateWeeklySchedule(entries)
	if err == nil {
		t.Error("start == end should be rejected")
	}
}

func TestValidateWeeklyScheduleClearsTimesOnDaysOff(t *testing.T) {
	entries := fullWeek()
	entries[5].StartTime = "10:00"
	entries[5].EndTime = "14:00"

	normalized, err := ValidateWeeklySchedule(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized[5].StartTime != "" || normalized[5].EndTime != "" {
		t.Errorf("times on a day off should be cleared, got %q-%q", normalized[5].StartTime, normalized[5].EndTime)
	}
}

func TestValidateAbsence(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     AbsenceInput
		wantField string
	}{
		{
			name:  "full day today is allowed",
			input: AbsenceInput{Date: now, IsFullDay: true},
		},
		{
			name:  "full day in the future is allowed",
			input: AbsenceInput{Date: now.AddDate(0, 0, 14), IsFullDay: true},
		},
		{
			name:      "yesterday is rejected",
			input:     AbsenceInput{Date: now.AddDate(0, 0, -1), IsFullDay: true},
			wantField: "date",
		},
		{
			name:      "missing date is rejected",
			input:     AbsenceInput{IsFullDay: true},
			wantField: "date",
		},
		{
			name:  "partial with valid window is allowed",
			input: AbsenceInput{Date: now, StartTime: "12:00", EndTime: "13:00"},
		},
		{
			name:      "partial without times is rejected",
			input:     AbsenceInput{Date: now},
			wantField: "startTime",
		},
		{
			name:      "partial with malformed end time is rejected",
			input:     AbsenceInput{Date: now, StartTime: "12:00", EndTime: "25:00"},
			wantField: "endTime",
		},
		{
			name:      "partial with start after end is rejected",
			input:     AbsenceInput{Date: now, StartTime: "14:00", EndTime: "12:00"},
			wantField: "startTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAbsence(tt.input, now)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			fields := fieldErrors(t, err)
			if !hasFieldError(fields, tt.wantField) {
				t.Errorf("expected error on %s, got %v", tt.wantField, fields)
			}
		})
	}
}

func TestValidateAbsenceClearsTimesOnFullDay(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	in := AbsenceInput{Date: now, IsFullDay: true, StartTime: "09:00", EndTime: "10:00"}

	out, err := ValidateAbsence(in, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.StartTime != "" || out.EndTime != "" {
		t.Errorf("times on a full-day absence should be cleared, got %q-%q", out.StartTime, out.EndTime)
	}
}

func TestValidateAbsenceSameDayLateEvening(t *testing.T) {
	// 23:59 on the absence date is still "today", not the past.
	now := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	in := AbsenceInput{Date: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), IsFullDay: true}

	if _, err := ValidateAbsence(in, now); err != nil {
		t.Fatalf("same-day absence should be allowed, got %v", err)
	}
}
