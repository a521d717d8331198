package utils

import (
	"github.com/meinhoongagan/clinic-app/availability"
)

// SlotMinutes is the booking grid granularity. The resolver itself knows
// nothing about slots; the grid is derived here at the booking surface.
const SlotMinutes = 30

// BuildSlots cuts the open ranges of a resolved day into fixed-size slots.
// Only slots that fit entirely inside an open range are returned.
func BuildSlots(open []availability.TimeRange) []availability.TimeRange {
	var slots []availability.TimeRange
	for _, window := range open {
		for start := window.Start; start+SlotMinutes <= window.End; start += SlotMinutes {
			slots = append(slots, availability.TimeRange{
				Start: start,
				End:   start + SlotMinutes,
			})
		}
	}
	return slots
}
