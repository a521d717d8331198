package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time stored as minutes since midnight.
// Comparing HH:MM strings lexically breaks the moment a value is not
// zero-padded, so all ordering goes through this type.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("must be in HH:MM format")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("must be in HH:MM format")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("must be in HH:MM format")
	}
	return TimeOfDay(hour*60 + minute), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// TimeRange is a half-open [Start, End) window within one day.
type TimeRange struct {
	Start TimeOfDay `json:"start_time"`
	End   TimeOfDay `json:"end_time"`
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// IsEmpty reports whether the range covers no time at all.
func (r TimeRange) IsEmpty() bool {
	return r.Start >= r.End
}

// Subtract removes the overlap with other and returns the zero, one or
// two non-empty ranges that remain.
func (r TimeRange) Subtract(other TimeRange) []TimeRange {
	// No overlap, nothing removed.
	if other.End <= r.Start || other.Start >= r.End {
		return []TimeRange{r}
	}

	var remaining []TimeRange
	if other.Start > r.Start {
		remaining = append(remaining, TimeRange{Start: r.Start, End: other.Start})
	}
	if other.End < r.End {
		remaining = append(remaining, TimeRange{Start: other.End, End: r.End})
	}
	return remaining
}

// MarshalJSON renders the range with HH:MM strings so API responses match
// the time format used everywhere else.
func (r TimeRange) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"start_time":%q,"end_time":%q}`, r.Start.String(), r.End.String())), nil
}
