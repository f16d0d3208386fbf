package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID         uuid.UUID `json:"id"`
	UnitID     uuid.UUID `json:"unit_id"`
	UnitNumber string    `json:"unit_number"`
	SpotID     uuid.UUID `json:"spot_id"`
	SpotCode   string    `json:"spot_code"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spot_id"`
	SpotCode  string    `json:"spot_code"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UnitView struct {
	ID                      uuid.UUID  `json:"id"`
	Number                  string     `json:"number"`
	Status                  string     `json:"status"`
	WeeklyQuotaHours        int32      `json:"weekly_quota_hours"`
	CurrentWeekUsageMinutes int32      `json:"current_week_usage_minutes"`
	RemainingQuotaMinutes   int32      `json:"remaining_quota_minutes"`
	LastBookingEnd          *time.Time `json:"last_booking_end,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

type SpotView struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	Floor  int32     `json:"floor"`
	Active bool      `json:"active"`
}
