package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusReported  Status = "reported"
	StatusLiberated Status = "liberated"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusActive, StatusCompleted,
		StatusCancelled, StatusReported, StatusLiberated:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the booking can no longer change state.
func (s Status) IsFinal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusReported, StatusLiberated:
		return true
	default:
		return false
	}
}
