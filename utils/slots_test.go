package utils

import (
	"testing"

	"github.com/meinhoongagan/clinic-app/availability"
)

func rangeOf(t *testing.T, start, end string) availability.TimeRange {
	t.Helper()
	s, err := availability.ParseTimeOfDay(start)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", start, err)
	}
	e, err := availability.ParseTimeOfDay(end)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", end, err)
	}
	return availability.TimeRange{Start: s, End: e}
}

func TestBuildSlots(t *testing.T) {
	slots := BuildSlots([]availability.TimeRange{rangeOf(t, "09:00", "10:30")})

	want := []string{"09:00-09:30", "09:30-10:00", "10:00-10:30"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %v", len(slots), len(want), slots)
	}
	for i, slot := range slots {
		if slot.String() != want[i] {
			t.Errorf("slot %d = %s, want %s", i, slot, want[i])
		}
	}
}

func TestBuildSlotsDropsPartialTail(t *testing.T) {
	// 09:00-09:50 fits one 30-minute slot, not two.
	slots := BuildSlots([]availability.TimeRange{rangeOf(t, "09:00", "09:50")})
	if len(slots) != 1 || slots[0].String() != "09:00-09:30" {
		t.Errorf("got %v, want [09:00-09:30]", slots)
	}
}

func TestBuildSlotsAcrossSplitDay(t *testing.T) {
	open := []availability.TimeRange{
		rangeOf(t, "09:00", "10:00"),
		rangeOf(t, "16:00", "17:00"),
	}
	slots := BuildSlots(open)
	if len(slots) != 4 {
		t.Fatalf("got %d slots, want 4: %v", len(slots), slots)
	}
	// No slot may straddle the gap.
	gapStart := rangeOf(t, "10:00", "16:00")
	for _, slot := range slots {
		if !slot.Start.Before(gapStart.Start) && slot.Start.Before(gapStart.End) {
			t.Errorf("slot %s falls inside the closed window", slot)
		}
	}
}

func TestBuildSlotsEmptyInput(t *testing.T) {
	if slots := BuildSlots(nil); len(slots) != 0 {
		t.Errorf("expected no slots, got %v", slots)
	}
}
