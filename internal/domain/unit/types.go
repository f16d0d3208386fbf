package unit

type Status string

const (
	StatusActive     Status = "active"
	StatusDelinquent Status = "delinquent"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusDelinquent:
		return true
	default:
		return false
	}
}
