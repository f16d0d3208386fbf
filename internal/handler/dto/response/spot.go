package response

import (
	"condo-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpotResponse struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	Floor  int32     `json:"floor"`
	Active bool      `json:"active"`
}

func FromSpotView(view *queries.SpotView) *SpotResponse {
	return &SpotResponse{
		ID:     view.ID,
		Code:   view.Code,
		Floor:  view.Floor,
		Active: view.Active,
	}
}
