package unit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyUnitNumber   = errors.New("unit number cannot be empty")
	ErrUnitNumberTooLong = errors.New("unit number is too long (max 16 characters)")
	ErrInvalidQuota      = errors.New("weekly quota must be positive")
	ErrNegativeUsage     = errors.New("usage minutes cannot be negative")
	ErrInvalidStatus     = errors.New("invalid unit status")
)

const MaxUnitNumberLength = 16

// Unit is a condominium household that holds a parking quota and a booking
// history. current week usage accumulates in minutes and is zeroed by the
// weekly reset worker.
type Unit struct {
	id                      uuid.UUID
	number                  string
	status                  Status
	weeklyQuotaHours        int32
	currentWeekUsageMinutes int32
	lastBookingEnd          *time.Time
	createdAt               time.Time
	updatedAt               time.Time
}

func NewUnit(number string, weeklyQuotaHours int32) (*Unit, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyUnitNumber
	}
	if len(number) > MaxUnitNumberLength {
		return nil, ErrUnitNumberTooLong
	}
	if weeklyQuotaHours <= 0 {
		return nil, ErrInvalidQuota
	}

	return &Unit{
		id:               uuid.New(),
		number:           number,
		status:           StatusActive,
		weeklyQuotaHours: weeklyQuotaHours,
	}, nil
}

func ReconstructUnit(
	id uuid.UUID,
	number string,
	status Status,
	weeklyQuotaHours int32,
	currentWeekUsageMinutes int32,
	lastBookingEnd *time.Time,
	createdAt, updatedAt time.Time,
) *Unit {
	return &Unit{
		id:                      id,
		number:                  number,
		status:                  status,
		weeklyQuotaHours:        weeklyQuotaHours,
		currentWeekUsageMinutes: currentWeekUsageMinutes,
		lastBookingEnd:          lastBookingEnd,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
	}
}

func (u *Unit) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	u.status = status
	return nil
}

func (u *Unit) IsDelinquent() bool {
	return u.status == StatusDelinquent
}

// RecordUsage adds a completed booking's minutes to the weekly tally and
// remembers when that booking ends.
func (u *Unit) RecordUsage(minutes int32, bookingEnd time.Time) error {
	if minutes < 0 {
		return ErrNegativeUsage
	}
	u.currentWeekUsageMinutes += minutes
	end := bookingEnd
	u.lastBookingEnd = &end
	return nil
}

func (u *Unit) ResetWeeklyUsage() {
	u.currentWeekUsageMinutes = 0
}

func (u *Unit) RemainingQuotaMinutes() int32 {
	remaining := u.weeklyQuotaHours*60 - u.currentWeekUsageMinutes
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (u *Unit) ID() uuid.UUID                  { return u.id }
func (u *Unit) Number() string                 { return u.number }
func (u *Unit) Status() Status                 { return u.status }
func (u *Unit) WeeklyQuotaHours() int32        { return u.weeklyQuotaHours }
func (u *Unit) CurrentWeekUsageMinutes() int32 { return u.currentWeekUsageMinutes }
func (u *Unit) LastBookingEnd() *time.Time     { return u.lastBookingEnd }
func (u *Unit) CreatedAt() time.Time           { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time           { return u.updatedAt }
