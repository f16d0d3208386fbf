package fairplay

import "time"

// Config carries the booking policy thresholds. DefaultWeeklyQuotaHours is
// only used when a unit's own quota cannot be read; the authoritative quota
// lives on the unit record.
type Config struct {
	MinDuration             time.Duration
	MaxDuration             time.Duration
	SlotIncrement           time.Duration
	Cooldown                time.Duration
	DefaultWeeklyQuotaHours int32
}

func DefaultConfig() Config {
	return Config{
		MinDuration:             15 * time.Minute,
		MaxDuration:             4 * time.Hour,
		SlotIncrement:           15 * time.Minute,
		Cooldown:                2 * time.Hour,
		DefaultWeeklyQuotaHours: 15,
	}
}
