package redis

import (
	"fmt"
	"log"
	"time"
)

// Resolved day availability is cached briefly so booking screens polling
// the same doctor and date don't recompute on every request.
const availabilityTTL = 5 * time.Minute

func availabilityKey(doctorID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", doctorID, date)
}

// GetAvailability returns the cached JSON payload for a doctor and date,
// or "" when there is no cache entry.
func GetAvailability(doctorID uint, date string) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, availabilityKey(doctorID, date)).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetAvailability caches the JSON payload for a doctor and date.
func SetAvailability(doctorID uint, date string, payload string) {
	if Client == nil {
		return
	}
	if err := Client.Set(Ctx, availabilityKey(doctorID, date), payload, availabilityTTL).Err(); err != nil {
		log.Printf("Failed to cache availability for doctor %d: %v", doctorID, err)
	}
}

// InvalidateAvailability drops every cached day for a doctor. Called after
// any schedule, absence or appointment write.
func InvalidateAvailability(doctorID uint) {
	if Client == nil {
		return
	}
	pattern := fmt.Sprintf("availability:%d:*", doctorID)
	keys, err := Client.Keys(Ctx, pattern).Result()
	if err != nil {
		log.Printf("Failed to list availability keys for doctor %d: %v", doctorID, err)
		return
	}
	if len(keys) > 0 {
		Client.Del(Ctx, keys...)
	}
}
