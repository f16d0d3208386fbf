package request

type CreateSpotRequest struct {
	Code  string `json:"code" binding:"required"`
	Floor int32  `json:"floor"`
}
