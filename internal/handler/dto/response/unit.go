package response

import (
	"time"

	"condo-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitResponse struct {
	ID                      uuid.UUID  `json:"id"`
	Number                  string     `json:"number"`
	Status                  string     `json:"status"`
	WeeklyQuotaHours        int32      `json:"weeklyQuotaHours"`
	CurrentWeekUsageMinutes int32      `json:"currentWeekUsageMinutes"`
	RemainingQuotaMinutes   int32      `json:"remainingQuotaMinutes"`
	LastBookingEnd          *time.Time `json:"lastBookingEnd,omitempty"`
	CreatedAt               time.Time  `json:"createdAt"`
	UpdatedAt               time.Time  `json:"updatedAt"`
}

func FromUnitView(view *queries.UnitView) *UnitResponse {
	return &UnitResponse{
		ID:                      view.ID,
		Number:                  view.Number,
		Status:                  view.Status,
		WeeklyQuotaHours:        view.WeeklyQuotaHours,
		CurrentWeekUsageMinutes: view.CurrentWeekUsageMinutes,
		RemainingQuotaMinutes:   view.RemainingQuotaMinutes,
		LastBookingEnd:          view.LastBookingEnd,
		CreatedAt:               view.CreatedAt,
		UpdatedAt:               view.UpdatedAt,
	}
}
