package request

type CreateUnitRequest struct {
	Number           string `json:"number" binding:"required"`
	WeeklyQuotaHours *int32 `json:"weekly_quota_hours,omitempty"`
}

type ChangeUnitStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
