package response

import (
	"time"

	"condo-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	UnitID     uuid.UUID `json:"unitId"`
	UnitNumber string    `json:"unitNumber"`
	SpotID     uuid.UUID `json:"spotId"`
	SpotCode   string    `json:"spotCode"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spotId"`
	SpotCode  string    `json:"spotCode"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         view.ID,
		UnitID:     view.UnitID,
		UnitNumber: view.UnitNumber,
		SpotID:     view.SpotID,
		SpotCode:   view.SpotCode,
		StartTime:  view.StartTime,
		EndTime:    view.EndTime,
		Status:     view.Status,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:        item.ID,
		SpotID:    item.SpotID,
		SpotCode:  item.SpotCode,
		StartTime: item.StartTime,
		EndTime:   item.EndTime,
		Status:    item.Status,
		CreatedAt: item.CreatedAt,
	}
}
