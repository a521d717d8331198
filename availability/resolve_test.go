package availability

import (
	"reflect"
	"testing"
	"time"
)

// aMonday is a date known to fall on a Monday.
var aMonday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func openRanges(t *testing.T, got DayAvailability) []string {
	t.Helper()
	out := make([]string, len(got.Open))
	for i, r := range got.Open {
		out[i] = r.String()
	}
	return out
}

func TestWeekdayNumbering(t *testing.T) {
	if got := Weekday(aMonday); got != 1 {
		t.Errorf("Monday should map to 1, got %d", got)
	}
	sunday := aMonday.AddDate(0, 0, 6)
	if got := Weekday(sunday); got != 7 {
		t.Errorf("Sunday should map to 7, got %d", got)
	}
}

func TestResolveNoAbsenceMatchesWeeklyEntry(t *testing.T) {
	got, err := Resolve(DefaultWeeklySchedule(), nil, aMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Working {
		t.Error("Monday should be a working day")
	}
	if want := []string{"09:00-17:00"}; !reflect.DeepEqual(openRanges(t, got), want) {
		t.Errorf("open ranges = %v, want %v", openRanges(t, got), want)
	}
}

func TestResolveNonWorkingDay(t *testing.T) {
	saturday := aMonday.AddDate(0, 0, 5)
	got, err := Resolve(DefaultWeeklySchedule(), nil, saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Working {
		t.Error("Saturday should not be a working day")
	}
	if len(got.Open) != 0 {
		t.Errorf("expected no open ranges, got %v", got.Open)
	}
}

func TestResolveFullDayAbsence(t *testing.T) {
	absences := []AbsenceInput{{Date: aMonday, IsFullDay: true, Reason: "conference"}}

	got, err := Resolve(DefaultWeeklySchedule(), absences, aMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Working {
		t.Error("full-day absence should make the day non-working")
	}
	if len(got.Open) != 0 {
		t.Errorf("expected no open ranges, got %v", got.Open)
	}
}

func TestResolvePartialAbsenceSplitsDay(t *testing.T) {
	absences := []AbsenceInput{{Date: aMonday, StartTime: "12:00", EndTime: "13:00"}}

	got, err := Resolve(DefaultWeeklySchedule(), absences, aMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Working {
		t.Error("partial absence should keep the day working")
	}
	if want := []string{"09:00-12:00", "13:00-17:00"}; !reflect.DeepEqual(openRanges(t, got), want) {
		t.Errorf("open ranges = %v, want %v", openRanges(t, got), want)
	}
}

func TestResolvePartialAbsenceCoversWholeWindow(t *testing.T) {
	absences := []AbsenceInput{{Date: aMonday, StartTime: "09:00", EndTime: "17:00"}}

	got, err := Resolve(DefaultWeeklySchedule(), absences, aMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Working {
		t.Error("day stays a working day even when fully booked out")
	}
	if len(got.Open) != 0 {
		t.Errorf("expected empty open ranges, got %v", got.Open)
	}
}

func TestResolveAbsenceOnOtherDateIgnored(t *testing.T) {
	tuesday := aMonday.AddDate(0, 0, 1)
	absences := []AbsenceInput{{Date: tuesday, IsFullDay: true}}

	got, err := Resolve(DefaultWeeklySchedule(), absences, aMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Working {
		t.Error("absence on another date must not affect Monday")
	}
	if want := []string{"09:00-17:00"}; !reflect.DeepEqual(openRanges(t, got), want) {
		t.Errorf("open ranges = %v, want %v", openRanges(t, got), want)
	}
}

func TestResolveCumulativeSubtraction(t *testing.T) {
	// Two partial absences on the same date subtract in listed order.
	absences := []AbsenceInput{
		{Date: aMonday, StartTime: "10:00", EndTime: "11:00"},
		{Date: aMonday, StartTime: "14:00", EndTime: "15:00"},
	}

	got, err := Resolve(DefaultWeeklySchedule(), absences, aMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00-10:00", "11:00-14:00", "15:00-17:00"}
	if !reflect.DeepEqual(openRanges(t, got), want) {
		t.Errorf("open ranges = %v, want %v", openRanges(t, got), want)
	}
}

func TestResolveOverlappingAbsences(t *testing.T) {
	absences := []AbsenceInput{
		{Date: aMonday, StartTime: "10:00", EndTime: "13:00"},
		{Date: aMonday, StartTime: "12:00", EndTime: "15:00"},
	}

	got, err := Resolve(DefaultWeeklySchedule(), absences, aMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00-10:00", "15:00-17:00"}
	if !reflect.DeepEqual(openRanges(t, got), want) {
		t.Errorf("open ranges = %v, want %v", openRanges(t, got), want)
	}
}

func TestResolveAbsenceOutsideWorkingWindow(t *testing.T) {
	absences := []AbsenceInput{{Date: aMonday, StartTime: "18:00", EndTime: "20:00"}}

	got, err := Resolve(DefaultWeeklySchedule(), absences, aMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"09:00-17:00"}; !reflect.DeepEqual(openRanges(t, got), want) {
		t.Errorf("open ranges = %v, want %v", openRanges(t, got), want)
	}
}

func TestResolveFullDayAbsenceOnDayOff(t *testing.T) {
	sunday := aMonday.AddDate(0, 0, 6)
	absences := []AbsenceInput{{Date: sunday, IsFullDay: true}}

	got, err := Resolve(DefaultWeeklySchedule(), absences, sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Working {
		t.Error("Sunday stays non-working")
	}
}

func TestResolveMissingEntryMeansNotWorking(t *testing.T) {
	schedule := DefaultWeeklySchedule()[:6] // no Sunday row
	sunday := aMonday.AddDate(0, 0, 6)

	got, err := Resolve(schedule, nil, sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Working {
		t.Error("a missing schedule entry should resolve to not working")
	}
}

func TestResolveRejectsCorruptScheduleTimes(t *testing.T) {
	schedule := DefaultWeeklySchedule()
	schedule[0].StartTime = "garbage"

	if _, err := Resolve(schedule, nil, aMonday); err == nil {
		t.Error("corrupt schedule times should surface as an error")
	}
}

func TestDefaultWeeklySchedule(t *testing.T) {
	entries := DefaultWeeklySchedule()
	if len(entries) != DaysPerWeek {
		t.Fatalf("expected %d entries, got %d", DaysPerWeek, len(entries))
	}
	for _, entry := range entries {
		weekday := entry.DayOfWeek <= 5
		if entry.IsWorkingDay != weekday {
			t.Errorf("day %d: IsWorkingDay = %v", entry.DayOfWeek, entry.IsWorkingDay)
		}
		if weekday && (entry.StartTime != "09:00" || entry.EndTime != "17:00") {
			t.Errorf("day %d: window = %s-%s, want 09:00-17:00", entry.DayOfWeek, entry.StartTime, entry.EndTime)
		}
	}
	if _, err := ValidateWeeklySchedule(entries); err != nil {
		t.Errorf("default schedule should validate: %v", err)
	}
}
